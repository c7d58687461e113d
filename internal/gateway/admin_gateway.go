package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/password"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AdminGateway interface {
	// ValidateAdmin reports whether adminID exists and password matches.
	ValidateAdmin(ctx context.Context, adminID int64, password string) (bool, error)
	// ValidatePilgrim reports whether a pilgrim with the id exists. Pilgrims
	// carry no secret.
	ValidatePilgrim(ctx context.Context, pilgrimID int64) (bool, error)
	// GetAdminByID never returns the stored password.
	GetAdminByID(ctx context.Context, adminID int64) (entity.Admin, bool, error)
	Create(ctx context.Context, admin *entity.Admin) (bool, error)
}

type adminGateway struct {
	base
	hashCost int
}

func NewAdminGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
	hashCost int,
) AdminGateway {
	return &adminGateway{
		base:     newBase(store, log, v, repos),
		hashCost: hashCost,
	}
}

func (g *adminGateway) ValidateAdmin(ctx context.Context, adminID int64, plain string) (bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return false, err
	}
	admin, err := g.repos.Admin.FindByID(ctx, db, adminID)
	if err != nil {
		return false, g.storeFailure(fmt.Sprintf("find admin %d", adminID), err)
	}
	if admin == nil {
		return false, nil
	}
	return password.Verify(admin.Password, plain), nil
}

func (g *adminGateway) ValidatePilgrim(ctx context.Context, pilgrimID int64) (bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return false, err
	}
	found, err := g.repos.Pilgrim.Exists(ctx, db, pilgrimID)
	if err != nil {
		return false, g.storeFailure(fmt.Sprintf("check pilgrim %d", pilgrimID), err)
	}
	return found, nil
}

func (g *adminGateway) GetAdminByID(ctx context.Context, adminID int64) (entity.Admin, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.Admin{}, false, err
	}
	admin, err := g.repos.Admin.FindByID(ctx, db, adminID)
	if err != nil {
		return entity.Admin{}, false, g.storeFailure(fmt.Sprintf("find admin %d", adminID), err)
	}
	if admin == nil {
		return entity.Admin{}, false, nil
	}
	admin.Password = ""
	return *admin, true, nil
}

// Create stores the admin with a bcrypt hash of the password. A value that
// is already hashed is stored as given.
func (g *adminGateway) Create(ctx context.Context, admin *entity.Admin) (bool, error) {
	if admin == nil {
		return false, errs.NewValidationError(map[string]string{"admin": "admin is required"})
	}
	if err := g.validator.Check(admin); err != nil {
		return false, err
	}

	record := *admin
	if !password.IsHashed(record.Password) {
		hashed, err := password.Hash(record.Password, g.hashCost)
		if err != nil {
			g.log.Warnf("Failed to hash admin password: %+v", err)
			return false, errs.NewValidationError(map[string]string{"password": err.Error()})
		}
		record.Password = hashed
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if record.ID == 0 {
		record.ID, err = g.repos.Admin.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate admin id", err)
		}
	} else {
		taken, err := g.repos.Admin.Exists(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check admin id", err)
		}
		if taken {
			return false, fmt.Errorf("%w: admin %d", errs.ErrDuplicateKey, record.ID)
		}
	}

	if err := g.repos.Admin.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create admin", err)
	}
	if err := g.commit(tx, "admin create"); err != nil {
		return false, err
	}

	admin.ID = record.ID
	g.log.Infof("Admin created: id=%d, name=%s", record.ID, record.Name)
	return true, nil
}
