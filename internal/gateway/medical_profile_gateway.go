package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
)

// MedicalProfileUpdate carries the mutable profile fields. AdminID becomes
// the profile's last author.
type MedicalProfileUpdate struct {
	ProfileID      int64  `json:"profile_id" validate:"gt=0"`
	BloodType      string `json:"blood_type" validate:"required,bloodtype"`
	Medications    string `json:"medications"`
	MedicalHistory string `json:"medical_history"`
	AdminID        int64  `json:"admin_id" validate:"gt=0"`
}

type MedicalProfileGateway interface {
	Create(ctx context.Context, profile *entity.MedicalProfile) (bool, error)
	GetByPilgrimID(ctx context.Context, pilgrimID int64) (entity.MedicalProfile, bool, error)
	Update(ctx context.Context, update MedicalProfileUpdate) (bool, error)
}

type medicalProfileGateway struct {
	base
}

func NewMedicalProfileGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
) MedicalProfileGateway {
	return &medicalProfileGateway{
		base: newBase(store, log, v, repos),
	}
}

// Create enforces one profile per pilgrim on top of the schema's unique index.
func (g *medicalProfileGateway) Create(ctx context.Context, profile *entity.MedicalProfile) (bool, error) {
	if profile == nil {
		return false, errs.NewValidationError(map[string]string{"profile": "profile is required"})
	}
	if err := g.validator.Check(profile); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	record := *profile
	if record.ID != 0 {
		existing, err := g.repos.MedicalProfile.FindByID(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check profile id", err)
		}
		if existing != nil {
			return false, fmt.Errorf("%w: medical profile %d", errs.ErrDuplicateKey, record.ID)
		}
	}

	if err := g.requirePilgrim(ctx, tx, record.PilgrimID, "check profile pilgrim"); err != nil {
		return false, err
	}
	if err := g.requireAdmin(ctx, tx, record.AdminID, "check profile admin"); err != nil {
		return false, err
	}

	current, err := g.repos.MedicalProfile.FindByPilgrimID(ctx, tx, record.PilgrimID)
	if err != nil {
		return false, g.storeFailure("check pilgrim profile", err)
	}
	if current != nil {
		return false, fmt.Errorf("%w: pilgrim %d already has medical profile %d", errs.ErrUniquenessViolation, record.PilgrimID, current.ID)
	}

	if record.ID == 0 {
		record.ID, err = g.repos.MedicalProfile.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate profile id", err)
		}
	}

	if err := g.repos.MedicalProfile.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create medical profile", err)
	}
	if err := g.commit(tx, "medical profile create"); err != nil {
		return false, err
	}

	profile.ID = record.ID
	g.log.Infof("Medical profile created: id=%d, pilgrim=%d, admin=%d", record.ID, record.PilgrimID, record.AdminID)
	return true, nil
}

func (g *medicalProfileGateway) GetByPilgrimID(ctx context.Context, pilgrimID int64) (entity.MedicalProfile, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.MedicalProfile{}, false, err
	}
	profile, err := g.repos.MedicalProfile.FindByPilgrimID(ctx, db, pilgrimID)
	if err != nil {
		return entity.MedicalProfile{}, false, g.storeFailure(fmt.Sprintf("find medical profile of pilgrim %d", pilgrimID), err)
	}
	if profile == nil {
		return entity.MedicalProfile{}, false, nil
	}
	return *profile, true, nil
}

func (g *medicalProfileGateway) Update(ctx context.Context, update MedicalProfileUpdate) (bool, error) {
	if err := g.validator.Check(&update); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	existing, err := g.repos.MedicalProfile.FindByID(ctx, tx, update.ProfileID)
	if err != nil {
		return false, g.storeFailure("find medical profile", err)
	}
	if existing == nil {
		return false, fmt.Errorf("%w: medical profile %d", errs.ErrNotFound, update.ProfileID)
	}
	if err := g.requireAdmin(ctx, tx, update.AdminID, "check profile admin"); err != nil {
		return false, err
	}

	existing.BloodType = update.BloodType
	existing.Medications = update.Medications
	existing.MedicalHistory = update.MedicalHistory
	existing.AdminID = update.AdminID

	affected, err := g.repos.MedicalProfile.Update(ctx, tx, existing)
	if err != nil {
		return false, g.storeFailure("update medical profile", err)
	}
	if affected != 1 {
		return false, nil
	}
	if err := g.commit(tx, "medical profile update"); err != nil {
		return false, err
	}

	g.log.Infof("Medical profile updated: id=%d, admin=%d", update.ProfileID, update.AdminID)
	return true, nil
}
