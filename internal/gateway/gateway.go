// Package gateway holds the persistence units the presentation layer calls.
// Each gateway owns one entity kind and, where relevant, its pair table.
// Writes run in a transaction that commits on success and rolls back on any
// failure; reads run directly against the shared pool.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"hajj-guide/internal/domain/errs"
	domainRepo "hajj-guide/internal/domain/repository"
	"hajj-guide/internal/repository"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Connector hands out the shared store pool. database.Store implements it.
type Connector interface {
	Acquire(ctx context.Context) (*gorm.DB, error)
}

// Repositories bundles the persistence units shared by the gateways.
type Repositories struct {
	Pilgrim              domainRepo.PilgrimRepository
	MedicalProfile       domainRepo.MedicalProfileRepository
	TransportSchedule    domainRepo.TransportScheduleRepository
	Accommodation        domainRepo.AccommodationRepository
	Permit               domainRepo.PermitRepository
	Admin                domainRepo.AdminRepository
	PilgrimTransport     domainRepo.AssignmentRepository
	PilgrimAccommodation domainRepo.AssignmentRepository
	PilgrimPermit        domainRepo.AssignmentRepository
}

func NewRepositories() Repositories {
	return Repositories{
		Pilgrim:              repository.NewPilgrimRepository(),
		MedicalProfile:       repository.NewMedicalProfileRepository(),
		TransportSchedule:    repository.NewTransportScheduleRepository(),
		Accommodation:        repository.NewAccommodationRepository(),
		Permit:               repository.NewPermitRepository(),
		Admin:                repository.NewAdminRepository(),
		PilgrimTransport:     repository.NewPilgrimTransportRepository(),
		PilgrimAccommodation: repository.NewPilgrimAccommodationRepository(),
		PilgrimPermit:        repository.NewPilgrimPermitRepository(),
	}
}

type base struct {
	store     Connector
	log       *logrus.Logger
	validator *validator.CustomValidator
	repos     Repositories
}

func newBase(store Connector, log *logrus.Logger, v *validator.CustomValidator, repos Repositories) base {
	return base{
		store:     store,
		log:       log,
		validator: v,
		repos:     repos,
	}
}

func (b *base) conn(ctx context.Context) (*gorm.DB, error) {
	db, err := b.store.Acquire(ctx)
	if err != nil {
		b.log.Warnf("Failed to acquire store: %+v", err)
		return nil, err
	}
	return db, nil
}

// begin opens a write transaction. Callers defer tx.Rollback() right away;
// after a successful Commit the deferred rollback is a no-op.
func (b *base) begin(ctx context.Context) (*gorm.DB, error) {
	db, err := b.conn(ctx)
	if err != nil {
		return nil, err
	}
	tx := db.Begin()
	if tx.Error != nil {
		return nil, b.storeFailure("begin transaction", tx.Error)
	}
	return tx, nil
}

func (b *base) commit(tx *gorm.DB, action string) error {
	if err := tx.Commit().Error; err != nil {
		return b.storeFailure("commit "+action, err)
	}
	return nil
}

// storeFailure logs a driver error and returns it classified.
func (b *base) storeFailure(action string, err error) error {
	b.log.Warnf("Failed to %s: %+v", action, err)
	return repository.ClassifyError(err)
}

// insertPair adds (pilgrimID, resourceID) to a pair table with set semantics:
// it reports false, nil when the pair is already present.
func (b *base) insertPair(ctx context.Context, tx *gorm.DB, repo domainRepo.AssignmentRepository, pilgrimID, resourceID int64, action string) (bool, error) {
	present, err := repo.Exists(ctx, tx, pilgrimID, resourceID)
	if err != nil {
		return false, b.storeFailure(action, err)
	}
	if present {
		return false, nil
	}
	if err := repo.Create(ctx, tx, pilgrimID, resourceID); err != nil {
		// A concurrent caller inserted the same pair first.
		if errors.Is(repository.ClassifyError(err), errs.ErrDuplicateKey) {
			return false, nil
		}
		return false, b.storeFailure(action, err)
	}
	return true, nil
}

// requirePilgrim fails with ErrForeignKeyMissing unless the pilgrim exists.
func (b *base) requirePilgrim(ctx context.Context, tx *gorm.DB, pilgrimID int64, action string) error {
	ok, err := b.repos.Pilgrim.Exists(ctx, tx, pilgrimID)
	if err != nil {
		return b.storeFailure(action, err)
	}
	if !ok {
		return fmt.Errorf("%w: pilgrim %d", errs.ErrForeignKeyMissing, pilgrimID)
	}
	return nil
}

func (b *base) requireAdmin(ctx context.Context, tx *gorm.DB, adminID int64, action string) error {
	ok, err := b.repos.Admin.Exists(ctx, tx, adminID)
	if err != nil {
		return b.storeFailure(action, err)
	}
	if !ok {
		return fmt.Errorf("%w: admin %d", errs.ErrForeignKeyMissing, adminID)
	}
	return nil
}
