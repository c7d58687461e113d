package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type PermitRepository interface {
	Create(ctx context.Context, db *gorm.DB, permit *entity.Permit) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Permit, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Permit, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.Permit, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
