package repository

import (
	"context"

	"hajj-guide/internal/domain/entity"
	domainRepo "hajj-guide/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const profileIDColumn = "ProfileID"

type medicalProfileRepository struct{}

func NewMedicalProfileRepository() domainRepo.MedicalProfileRepository {
	return &medicalProfileRepository{}
}

func (r *medicalProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *medicalProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.MedicalProfile, error) {
	var profile entity.MedicalProfile
	found, err := first(ctx, db, &profile, eq(profileIDColumn, id))
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (r *medicalProfileRepository) FindByPilgrimID(ctx context.Context, db *gorm.DB, pilgrimID int64) (*entity.MedicalProfile, error) {
	var profile entity.MedicalProfile
	found, err := first(ctx, db, &profile, eq(pilgrimIDColumn, pilgrimID))
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

// Update never touches PilgrimID; a profile stays bound to its pilgrim.
func (r *medicalProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.MedicalProfile{}).
		Where(eq(profileIDColumn, profile.ID)).
		Updates(map[string]interface{}{
			"bloodType":       profile.BloodType,
			"medications":     profile.Medications,
			"Medical_History": profile.MedicalHistory,
			"AdminID":         profile.AdminID,
		})
	return result.RowsAffected, result.Error
}

func (r *medicalProfileRepository) DeleteByPilgrimID(ctx context.Context, db *gorm.DB, pilgrimID int64) (int64, error) {
	result := db.WithContext(ctx).Where(eq(pilgrimIDColumn, pilgrimID)).Delete(&entity.MedicalProfile{})
	return result.RowsAffected, result.Error
}

func (r *medicalProfileRepository) NextID(ctx context.Context, db *gorm.DB) (int64, error) {
	return nextID(ctx, db, &entity.MedicalProfile{}, profileIDColumn)
}
