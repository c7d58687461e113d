package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column names in the schema are mixed case, so every condition goes through
// gorm's quoting (map keys and clause.Column) rather than raw SQL strings.

func eq(column string, value interface{}) map[string]interface{} {
	return map[string]interface{}{column: value}
}

func orderBy(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

// nextID returns MAX(column)+1 for the model's table, or 1 on an empty table.
// It must run inside the writing transaction.
func nextID(ctx context.Context, db *gorm.DB, model interface{}, column string) (int64, error) {
	var next int64
	err := db.WithContext(ctx).
		Model(model).
		Select("COALESCE(MAX(?), 0) + 1", clause.Column{Name: column}).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, conds map[string]interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where(conds).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// first loads a single row into dest. It reports false, nil when no row matches.
func first(ctx context.Context, db *gorm.DB, dest interface{}, conds map[string]interface{}) (bool, error) {
	err := db.WithContext(ctx).Where(conds).Take(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// supportsRowLocks reports whether SELECT ... FOR UPDATE is available.
func supportsRowLocks(db *gorm.DB) bool {
	return db.Dialector.Name() != "sqlite"
}
