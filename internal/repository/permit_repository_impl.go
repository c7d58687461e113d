package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const permitIDColumn = "PermitID"

type permitRepository struct{}

func NewPermitRepository() domainRepo.PermitRepository {
	return &permitRepository{}
}

func (r *permitRepository) Create(ctx context.Context, db *gorm.DB, permit *entity.Permit) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(permit).Error
}

func (r *permitRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Permit, error) {
	var permits []entity.Permit
	err := db.WithContext(ctx).Order(orderBy(permitIDColumn)).Find(&permits).Error
	if err != nil {
		return nil, err
	}
	return permits, nil
}

func (r *permitRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Permit, error) {
	var permit entity.Permit
	found, err := first(ctx, db, &permit, eq(permitIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &permit, nil
}

func (r *permitRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]entity.Permit, error) {
	permits := []entity.Permit{}
	if len(ids) == 0 {
		return permits, nil
	}
	err := db.WithContext(ctx).Where(eq(permitIDColumn, ids)).Order(orderBy(permitIDColumn)).Find(&permits).Error
	if err != nil {
		return nil, err
	}
	return permits, nil
}

func (r *permitRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.Permit{}, permitIDColumn)
}
