package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Admin, error)
	Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
