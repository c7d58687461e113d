package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scheduleIDColumn = "ScheduleID"

type transportScheduleRepository struct{}

func NewTransportScheduleRepository() domainRepo.TransportScheduleRepository {
	return &transportScheduleRepository{}
}

func (r *transportScheduleRepository) Create(ctx context.Context, db *gorm.DB, schedule *entity.TransportSchedule) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(schedule).Error
}

func (r *transportScheduleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.TransportSchedule, error) {
	var schedules []entity.TransportSchedule
	err := db.WithContext(ctx).Order(orderBy(scheduleIDColumn)).Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *transportScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.TransportSchedule, error) {
	var schedule entity.TransportSchedule
	found, err := first(ctx, db, &schedule, eq(scheduleIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &schedule, nil
}

func (r *transportScheduleRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.TransportSchedule, error) {
	schedules := []entity.TransportSchedule{}
	if len(ids) == 0 {
		return schedules, nil
	}
	err := db.WithContext(ctx).Where(eq(scheduleIDColumn, ids)).Order(orderBy(scheduleIDColumn)).Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *transportScheduleRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.TransportSchedule{}, scheduleIDColumn)
}
