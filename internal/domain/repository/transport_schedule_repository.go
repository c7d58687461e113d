package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"

	"gorm.io/gorm"
)

type TransportScheduleRepository interface {
	Create(ctx context.Context, db *gorm.DB, schedule *entity.TransportSchedule) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.TransportSchedule, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.TransportSchedule, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.TransportSchedule, error)
	NextID(ctx context.Context, db *gorm.DB) (int64, error)
}
