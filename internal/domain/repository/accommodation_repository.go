package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type AccommodationRepository interface {
	Create(ctx context.Context, db *gorm.DB, accommodation *entity.Accommodation) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Accommodation, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Accommodation, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends
	// on stores that support row locks.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*entity.Accommodation, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.Accommodation, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
