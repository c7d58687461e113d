package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assignmentRepository serves all three pair tables. Each instance knows its
// model, the resource column and how to build a row.
type assignmentRepository struct {
	model          func() interface{}
	resourceColumn string
	newPair        func(pilgrimID, resourceID int64) interface{}
}

func NewPilgrimTransportRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{
		model:          func() interface{} { return &entity.PilgrimTransport{} },
		resourceColumn: scheduleIDColumn,
		newPair: func(pilgrimID, resourceID int64) interface{} {
			return &entity.PilgrimTransport{PilgrimID: pilgrimID, ScheduleID: resourceID}
		},
	}
}

func NewPilgrimAccommodationRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{
		model:          func() interface{} { return &entity.PilgrimAccommodation{} },
		resourceColumn: accommodationIDColumn,
		newPair: func(pilgrimID, resourceID int64) interface{} {
			return &entity.PilgrimAccommodation{PilgrimID: pilgrimID, AccommodationID: resourceID}
		},
	}
}

func NewPilgrimPermitRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{
		model:          func() interface{} { return &entity.PilgrimPermit{} },
		resourceColumn: permitIDColumn,
		newPair: func(pilgrimID, resourceID int64) interface{} {
			return &entity.PilgrimPermit{PilgrimID: pilgrimID, PermitID: resourceID}
		},
	}
}

func (r *assignmentRepository) pair(pilgrimID, resourceID int64) map[string]interface{} {
	return map[string]interface{}{
		pilgrimIDColumn:  pilgrimID,
		r.resourceColumn: resourceID,
	}
}

func (r *assignmentRepository) Create(ctx context.Context, db *gorm.DB, pilgrimID, resourceID int64) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(r.newPair(pilgrimID, resourceID)).Error
}

func (r *assignmentRepository) Exists(ctx context.Context, db *gorm.DB, pilgrimID, resourceID int64) (bool, error) {
	return exists(ctx, db, r.model(), r.pair(pilgrimID, resourceID))
}

func (r *assignmentRepository) CountByResource(ctx context.Context, db *gorm.DB, resourceID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(r.model()).Where(eq(r.resourceColumn, resourceID)).Count(&count).Error
	return count, err
}

func (r *assignmentRepository) CountByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(r.model()).Where(eq(pilgrimIDColumn, pilgrimID)).Count(&count).Error
	return count, err
}

func (r *assignmentRepository) ResourceIDsByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) ([]int64, error) {
	var ids []int64
	err := db.WithContext(ctx).
		Model(r.model()).
		Where(eq(pilgrimIDColumn, pilgrimID)).
		Order(orderBy(r.resourceColumn)).
		Pluck(r.resourceColumn, &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *assignmentRepository) DeleteByPilgrim(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error) {
	result := db.WithContext(ctx).Where(eq(pilgrimIDColumn, pilgrimID)).Delete(r.model())
	return result.RowsAffected, result.Error
}
