package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const adminIDColumn = "AdminID"

type adminRepository struct{}

func NewAdminRepository() domainRepo.AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Admin, error) {
	var admin entity.Admin
	found, err := first(ctx, db, &admin, eq(adminIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return exists(ctx, db, &entity.Admin{}, eq(adminIDColumn, id))
}

func (r *adminRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.Admin{}, adminIDColumn)
}
