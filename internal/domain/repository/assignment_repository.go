package repository

import (
	"context"

	"gorm.io/gorm"
)

// AssignmentRepository manages one pilgrim-to-resource pair table.
// resourceID is the schedule, accommodation or permit id depending on the table.
type AssignmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, pilgrimID, resourceID int64) error
	Exists(ctx context.Context, db *gorm.DB, pilgrimID, resourceID int64) (bool, error)
	CountByResource(ctx context.Context, db *gorm.DB, resourceID int64) (int64, error)
	CountByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error)
	ResourceIDsByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) ([]int64, error)
	DeleteByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error)
}
