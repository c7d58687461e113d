package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pilgrimIDColumn = "PilgrimID"

type pilgrimRepository struct{}

func NewPilgrimRepository() domainRepo.PilgrimRepository {
	return &pilgrimRepository{}
}

func (r *pilgrimRepository) Create(ctx context.Context, db *gorm.DB, pilgrim *entity.Pilgrim) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(pilgrim).Error
}

func (r *pilgrimRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Pilgrim, error) {
	var pilgrims []entity.Pilgrim
	err := db.WithContext(ctx).Order(orderBy(pilgrimIDColumn)).Find(&pilgrims).Error
	if err != nil {
		return nil, err
	}
	return pilgrims, nil
}

func (r *pilgrimRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Pilgrim, error) {
	var pilgrim entity.Pilgrim
	found, err := first(ctx, db, &pilgrim, eq(pilgrimIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &pilgrim, nil
}

func (r *pilgrimRepository) Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return exists(ctx, db, &entity.Pilgrim{}, eq(pilgrimIDColumn, id))
}

// Update rewrites every mutable column, including empty strings and zero
// ages. The id itself is only used as the match condition.
func (r *pilgrimRepository) Update(ctx context.Context, db *gorm.DB, pilgrim *entity.Pilgrim) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Pilgrim{}).
		Where(eq(pilgrimIDColumn, pilgrim.ID)).
		Updates(map[string]interface{}{
			"PilgrimName": pilgrim.Name,
			"Phone":       pilgrim.Phone,
			"Nationality": pilgrim.Nationality,
			"specialNeed": pilgrim.SpecialNeed,
			"allergies":   pilgrim.Allergies,
			"pilgrimAge":  pilgrim.Age,
		})
	return result.RowsAffected, result.Error
}

func (r *pilgrimRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where(eq(pilgrimIDColumn, id)).Delete(&entity.Pilgrim{})
	return result.RowsAffected, result.Error
}

func (r *pilgrimRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.Pilgrim{}, pilgrimIDColumn)
}
