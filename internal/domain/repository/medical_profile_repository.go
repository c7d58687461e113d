package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.MedicalProfile, error)
	FindByPilgrimID(ctx context.Context, db *gorm.DB, pilgrimID int64) (*entity.MedicalProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) (int64, error)
	DeleteByPilgrimID(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
