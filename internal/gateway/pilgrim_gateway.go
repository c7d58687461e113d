package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	domainRepo "hajj-guide/internal/domain/repository"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PilgrimGateway interface {
	// Create inserts the pilgrim. A zero ID is replaced by the next free id,
	// which is written back to pilgrim on success.
	Create(ctx context.Context, pilgrim *entity.Pilgrim) (bool, error)
	GetAll(ctx context.Context) ([]entity.Pilgrim, error)
	// GetByID reports false when no pilgrim has the id.
	GetByID(ctx context.Context, id int64) (entity.Pilgrim, bool, error)
	Update(ctx context.Context, pilgrim entity.Pilgrim) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type pilgrimGateway struct {
	base
	cascadeDelete bool
}

// NewPilgrimGateway builds the pilgrim gateway. With cascadeDelete, Delete
// also removes the pilgrim's assignments and medical profile; without it,
// Delete refuses while any of them exist.
func NewPilgrimGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
	cascadeDelete bool,
) PilgrimGateway {
	return &pilgrimGateway{
		base:          newBase(store, log, v, repos),
		cascadeDelete: cascadeDelete,
	}
}

func (g *pilgrimGateway) Create(ctx context.Context, pilgrim *entity.Pilgrim) (bool, error) {
	if pilgrim == nil {
		return false, errs.NewValidationError(map[string]string{"pilgrim": "pilgrim is required"})
	}
	if err := g.validator.Check(pilgrim); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	record := *pilgrim
	if record.ID == 0 {
		record.ID, err = g.repos.Pilgrim.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate pilgrim id", err)
		}
	} else {
		taken, err := g.repos.Pilgrim.Exists(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check pilgrim id", err)
		}
		if taken {
			return false, fmt.Errorf("%w: pilgrim %d", errs.ErrDuplicateKey, record.ID)
		}
	}

	if err := g.repos.Pilgrim.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create pilgrim", err)
	}
	if err := g.commit(tx, "pilgrim create"); err != nil {
		return false, err
	}

	pilgrim.ID = record.ID
	g.log.Infof("Pilgrim created: id=%d", record.ID)
	return true, nil
}

func (g *pilgrimGateway) GetAll(ctx context.Context) ([]entity.Pilgrim, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	pilgrims, err := g.repos.Pilgrim.FindAll(ctx, db)
	if err != nil {
		return nil, g.storeFailure("list pilgrims", err)
	}
	return pilgrims, nil
}

func (g *pilgrimGateway) GetByID(ctx context.Context, id int64) (entity.Pilgrim, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.Pilgrim{}, false, err
	}
	pilgrim, err := g.repos.Pilgrim.FindByID(ctx, db, id)
	if err != nil {
		return entity.Pilgrim{}, false, g.storeFailure(fmt.Sprintf("find pilgrim %d", id), err)
	}
	if pilgrim == nil {
		return entity.Pilgrim{}, false, nil
	}
	return *pilgrim, true, nil
}

func (g *pilgrimGateway) Update(ctx context.Context, pilgrim entity.Pilgrim) (bool, error) {
	if err := g.validator.Check(&pilgrim); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	found, err := g.repos.Pilgrim.Exists(ctx, tx, pilgrim.ID)
	if err != nil {
		return false, g.storeFailure("check pilgrim", err)
	}
	if !found {
		return false, fmt.Errorf("%w: pilgrim %d", errs.ErrNotFound, pilgrim.ID)
	}

	affected, err := g.repos.Pilgrim.Update(ctx, tx, &pilgrim)
	if err != nil {
		return false, g.storeFailure("update pilgrim", err)
	}
	if affected != 1 {
		return false, nil
	}
	if err := g.commit(tx, "pilgrim update"); err != nil {
		return false, err
	}

	g.log.Infof("Pilgrim updated: id=%d", pilgrim.ID)
	return true, nil
}

func (g *pilgrimGateway) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	found, err := g.repos.Pilgrim.Exists(ctx, tx, id)
	if err != nil {
		return false, g.storeFailure("check pilgrim", err)
	}
	if !found {
		return false, fmt.Errorf("%w: pilgrim %d", errs.ErrNotFound, id)
	}

	dependents, err := g.countDependents(ctx, tx, id)
	if err != nil {
		return false, err
	}
	if dependents > 0 {
		if !g.cascadeDelete {
			return false, fmt.Errorf("%w: pilgrim %d has %d dependent records", errs.ErrIntegrityViolation, id, dependents)
		}
		if err := g.deleteDependents(ctx, tx, id); err != nil {
			return false, err
		}
	}

	affected, err := g.repos.Pilgrim.Delete(ctx, tx, id)
	if err != nil {
		return false, g.storeFailure("delete pilgrim", err)
	}
	if affected != 1 {
		return false, nil
	}
	if err := g.commit(tx, "pilgrim delete"); err != nil {
		return false, err
	}

	g.log.Infof("Pilgrim deleted: id=%d, dependents=%d", id, dependents)
	return true, nil
}

// countDependents counts the medical profile and every assignment row that
// reference the pilgrim.
func (g *pilgrimGateway) countDependents(ctx context.Context, tx *gorm.DB, id int64) (int64, error) {
	var total int64

	profile, err := g.repos.MedicalProfile.FindByPilgrimID(ctx, tx, id)
	if err != nil {
		return 0, g.storeFailure("check medical profile", err)
	}
	if profile != nil {
		total++
	}

	for _, repo := range g.assignmentRepos() {
		n, err := repo.CountByPilgrim(ctx, tx, id)
		if err != nil {
			return 0, g.storeFailure("count pilgrim assignments", err)
		}
		total += n
	}
	return total, nil
}

func (g *pilgrimGateway) deleteDependents(ctx context.Context, tx *gorm.DB, id int64) error {
	for _, repo := range g.assignmentRepos() {
		if _, err := repo.DeleteByPilgrim(ctx, tx, id); err != nil {
			return g.storeFailure("delete pilgrim assignments", err)
		}
	}
	if _, err := g.repos.MedicalProfile.DeleteByPilgrimID(ctx, tx, id); err != nil {
		return g.storeFailure("delete medical profile", err)
	}
	return nil
}

func (g *pilgrimGateway) assignmentRepos() []domainRepo.AssignmentRepository {
	return []domainRepo.AssignmentRepository{
		g.repos.PilgrimTransport,
		g.repos.PilgrimAccommodation,
		g.repos.PilgrimPermit,
	}
}
