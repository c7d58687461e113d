package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PermitGateway interface {
	Create(ctx context.Context, permit *entity.Permit) (bool, error)
	GetAll(ctx context.Context) ([]entity.Permit, error)
	GetByID(ctx context.Context, id int64) (entity.Permit, bool, error)
	// AssignPermit reports false, nil when the pilgrim already holds the permit.
	AssignPermit(ctx context.Context, pilgrimID, permitID int64) (bool, error)
	ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.Permit, error)
}

type permitGateway struct {
	base
}

func NewPermitGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
) PermitGateway {
	return &permitGateway{
		base: newBase(store, log, v, repos),
	}
}

func (g *permitGateway) Create(ctx context.Context, permit *entity.Permit) (bool, error) {
	if permit == nil {
		return false, errs.NewValidationError(map[string]string{"permit": "permit is required"})
	}
	if err := g.validator.Check(permit); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	record := *permit
	if record.ID == 0 {
		record.ID, err = g.repos.Permit.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate permit id", err)
		}
	} else {
		existing, err := g.repos.Permit.FindByID(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check permit id", err)
		}
		if existing != nil {
			return false, fmt.Errorf("%w: permit %d", errs.ErrDuplicateKey, record.ID)
		}
	}

	if err := g.repos.Permit.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create permit", err)
	}
	if err := g.commit(tx, "permit create"); err != nil {
		return false, err
	}

	permit.ID = record.ID
	g.log.Infof("Permit created: id=%d, name=%s", record.ID, record.Name)
	return true, nil
}

func (g *permitGateway) GetAll(ctx context.Context) ([]entity.Permit, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	permits, err := g.repos.Permit.FindAll(ctx, db)
	if err != nil {
		return nil, g.storeFailure("list permits", err)
	}
	return permits, nil
}

func (g *permitGateway) GetByID(ctx context.Context, id int64) (entity.Permit, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.Permit{}, false, err
	}
	permit, err := g.repos.Permit.FindByID(ctx, db, id)
	if err != nil {
		return entity.Permit{}, false, g.storeFailure(fmt.Sprintf("find permit %d", id), err)
	}
	if permit == nil {
		return entity.Permit{}, false, nil
	}
	return *permit, true, nil
}

func (g *permitGateway) AssignPermit(ctx context.Context, pilgrimID, permitID int64) (bool, error) {
	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if err := g.requirePilgrim(ctx, tx, pilgrimID, "check permit holder"); err != nil {
		return false, err
	}
	permit, err := g.repos.Permit.FindByID(ctx, tx, permitID)
	if err != nil {
		return false, g.storeFailure("find permit", err)
	}
	if permit == nil {
		return false, fmt.Errorf("%w: permit %d", errs.ErrForeignKeyMissing, permitID)
	}

	added, err := g.insertPair(ctx, tx, g.repos.PilgrimPermit, pilgrimID, permitID, "assign permit")
	if err != nil || !added {
		return false, err
	}
	if err := g.commit(tx, "permit assignment"); err != nil {
		return false, err
	}

	g.log.Infof("Permit assigned: pilgrim=%d, permit=%d", pilgrimID, permitID)
	return true, nil
}

func (g *permitGateway) ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.Permit, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := g.repos.PilgrimPermit.ResourceIDsByPilgrim(ctx, db, pilgrimID)
	if err != nil {
		return nil, g.storeFailure("list pilgrim permits", err)
	}
	permits, err := g.repos.Permit.FindByIDs(ctx, db, ids)
	if err != nil {
		return nil, g.storeFailure("load pilgrim permits", err)
	}
	return permits, nil
}
