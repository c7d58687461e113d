package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AccommodationGateway interface {
	Create(ctx context.Context, accommodation *entity.Accommodation) (bool, error)
	GetAll(ctx context.Context) ([]entity.Accommodation, error)
	GetByID(ctx context.Context, id int64) (entity.Accommodation, bool, error)
	// AssignPilgrim reports false, nil when the pilgrim is already assigned and
	// fails with errs.ErrCapacityExceeded when the accommodation is full.
	AssignPilgrim(ctx context.Context, pilgrimID, accommodationID int64) (bool, error)
	ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.Accommodation, error)
	Occupancy(ctx context.Context, accommodationID int64) (int64, error)
}

type accommodationGateway struct {
	base
}

func NewAccommodationGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
) AccommodationGateway {
	return &accommodationGateway{
		base: newBase(store, log, v, repos),
	}
}

func (g *accommodationGateway) Create(ctx context.Context, accommodation *entity.Accommodation) (bool, error) {
	if accommodation == nil {
		return false, errs.NewValidationError(map[string]string{"accommodation": "accommodation is required"})
	}
	if err := g.validator.Check(accommodation); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	record := *accommodation
	if record.ID != 0 {
		existing, err := g.repos.Accommodation.FindByID(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check accommodation id", err)
		}
		if existing != nil {
			return false, fmt.Errorf("%w: accommodation %d", errs.ErrDuplicateKey, record.ID)
		}
	}
	if err := g.requireAdmin(ctx, tx, record.AdminID, "check accommodation admin"); err != nil {
		return false, err
	}
	if record.ID == 0 {
		record.ID, err = g.repos.Accommodation.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate accommodation id", err)
		}
	}

	if err := g.repos.Accommodation.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create accommodation", err)
	}
	if err := g.commit(tx, "accommodation create"); err != nil {
		return false, err
	}

	accommodation.ID = record.ID
	g.log.Infof("Accommodation created: id=%d, hotel=%s, capacity=%d", record.ID, record.HotelName, record.Capacity)
	return true, nil
}

func (g *accommodationGateway) GetAll(ctx context.Context) ([]entity.Accommodation, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	accommodations, err := g.repos.Accommodation.FindAll(ctx, db)
	if err != nil {
		return nil, g.storeFailure("list accommodations", err)
	}
	return accommodations, nil
}

func (g *accommodationGateway) GetByID(ctx context.Context, id int64) (entity.Accommodation, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.Accommodation{}, false, err
	}
	accommodation, err := g.repos.Accommodation.FindByID(ctx, db, id)
	if err != nil {
		return entity.Accommodation{}, false, g.storeFailure(fmt.Sprintf("find accommodation %d", id), err)
	}
	if accommodation == nil {
		return entity.Accommodation{}, false, nil
	}
	return *accommodation, true, nil
}

// AssignPilgrim locks the accommodation row first so that concurrent
// assignments to the same accommodation count occupancy one at a time.
func (g *accommodationGateway) AssignPilgrim(ctx context.Context, pilgrimID, accommodationID int64) (bool, error) {
	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	accommodation, err := g.repos.Accommodation.FindByIDForUpdate(ctx, tx, accommodationID)
	if err != nil {
		return false, g.storeFailure("lock accommodation", err)
	}
	if accommodation == nil {
		return false, fmt.Errorf("%w: accommodation %d", errs.ErrForeignKeyMissing, accommodationID)
	}
	if err := g.requirePilgrim(ctx, tx, pilgrimID, "check assigned pilgrim"); err != nil {
		return false, err
	}

	present, err := g.repos.PilgrimAccommodation.Exists(ctx, tx, pilgrimID, accommodationID)
	if err != nil {
		return false, g.storeFailure("check accommodation assignment", err)
	}
	if present {
		return false, nil
	}

	occupied, err := g.repos.PilgrimAccommodation.CountByResource(ctx, tx, accommodationID)
	if err != nil {
		return false, g.storeFailure("count accommodation occupants", err)
	}
	if occupied >= int64(accommodation.Capacity) {
		return false, fmt.Errorf("%w: accommodation %d holds %d of %d", errs.ErrCapacityExceeded, accommodationID, occupied, accommodation.Capacity)
	}

	added, err := g.insertPair(ctx, tx, g.repos.PilgrimAccommodation, pilgrimID, accommodationID, "assign pilgrim to accommodation")
	if err != nil || !added {
		return false, err
	}
	if err := g.commit(tx, "accommodation assignment"); err != nil {
		return false, err
	}

	g.log.Infof("Pilgrim assigned to accommodation: pilgrim=%d, accommodation=%d, occupancy=%d/%d",
		pilgrimID, accommodationID, occupied+1, accommodation.Capacity)
	return true, nil
}

func (g *accommodationGateway) ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.Accommodation, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := g.repos.PilgrimAccommodation.ResourceIDsByPilgrim(ctx, db, pilgrimID)
	if err != nil {
		return nil, g.storeFailure("list pilgrim accommodations", err)
	}
	accommodations, err := g.repos.Accommodation.FindByIDs(ctx, db, ids)
	if err != nil {
		return nil, g.storeFailure("load pilgrim accommodations", err)
	}
	return accommodations, nil
}

func (g *accommodationGateway) Occupancy(ctx context.Context, accommodationID int64) (int64, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return 0, err
	}
	occupied, err := g.repos.PilgrimAccommodation.CountByResource(ctx, db, accommodationID)
	if err != nil {
		return 0, g.storeFailure("count accommodation occupants", err)
	}
	return occupied, nil
}
