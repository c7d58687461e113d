package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type PilgrimRepository interface {
	Create(ctx context.Context, db *gorm.DB, pilgrim *entity.Pilgrim) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Pilgrim, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Pilgrim, error)
	Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	Update(ctx context.Context, db *gorm.DB, pilgrim *entity.Pilgrim) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
