package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const accommodationIDColumn = "AccommodationID"

type accommodationRepository struct{}

func NewAccommodationRepository() domainRepo.AccommodationRepository {
	return &accommodationRepository{}
}

func (r *accommodationRepository) Create(ctx context.Context, db *gorm.DB, accommodation *entity.Accommodation) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(accommodation).Error
}

func (r *accommodationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Accommodation, error) {
	var accommodations []entity.Accommodation
	err := db.WithContext(ctx).Order(orderBy(accommodationIDColumn)).Find(&accommodations).Error
	if err != nil {
		return nil, err
	}
	return accommodations, nil
}

func (r *accommodationRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Accommodation, error) {
	var accommodation entity.Accommodation
	found, err := first(ctx, db, &accommodation, eq(accommodationIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &accommodation, nil
}

// FindByIDForUpdate serializes concurrent assignments to the same
// accommodation. SQLite has no row locks; its writers are already serialized.
func (r *accommodationRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*entity.Accommodation, error) {
	if supportsRowLocks(db) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.FindByID(ctx, db, id)
}

func (r *accommodationRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.Accommodation, error) {
	accommodations := []entity.Accommodation{}
	if len(ids) == 0 {
		return accommodations, nil
	}
	err := db.WithContext(ctx).Where(eq(accommodationIDColumn, ids)).Order(orderBy(accommodationIDColumn)).Find(&accommodations).Error
	if err != nil {
		return nil, err
	}
	return accommodations, nil
}

func (r *accommodationRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.Accommodation{}, accommodationIDColumn)
}
