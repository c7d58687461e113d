package gateway

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
)

type TransportScheduleGateway interface {
	Create(ctx context.Context, schedule *entity.TransportSchedule) (bool, error)
	GetAll(ctx context.Context) ([]entity.TransportSchedule, error)
	GetByID(ctx context.Context, id int64) (entity.TransportSchedule, bool, error)
	// AssignPilgrim reports false, nil when the pilgrim is already on the schedule.
	AssignPilgrim(ctx context.Context, pilgrimID, scheduleID int64) (bool, error)
	ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.TransportSchedule, error)
}

type transportScheduleGateway struct {
	base
}

func NewTransportScheduleGateway(
	store Connector,
	log *logrus.Logger,
	v *validator.CustomValidator,
	repos Repositories,
) TransportScheduleGateway {
	return &transportScheduleGateway{
		base: newBase(store, log, v, repos),
	}
}

func (g *transportScheduleGateway) Create(ctx context.Context, schedule *entity.TransportSchedule) (bool, error) {
	if schedule == nil {
		return false, errs.NewValidationError(map[string]string{"schedule": "schedule is required"})
	}
	if err := g.validator.Check(schedule); err != nil {
		return false, err
	}

	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	record := *schedule
	if record.ID != 0 {
		existing, err := g.repos.TransportSchedule.FindByID(ctx, tx, record.ID)
		if err != nil {
			return false, g.storeFailure("check schedule id", err)
		}
		if existing != nil {
			return false, fmt.Errorf("%w: transport schedule %d", errs.ErrDuplicateKey, record.ID)
		}
	}
	if err := g.requireAdmin(ctx, tx, record.AdminID, "check schedule admin"); err != nil {
		return false, err
	}
	if record.ID == 0 {
		record.ID, err = g.repos.TransportSchedule.NextID(ctx, tx)
		if err != nil {
			return false, g.storeFailure("allocate schedule id", err)
		}
	}

	if err := g.repos.TransportSchedule.Create(ctx, tx, &record); err != nil {
		return false, g.storeFailure("create transport schedule", err)
	}
	if err := g.commit(tx, "transport schedule create"); err != nil {
		return false, err
	}

	schedule.ID = record.ID
	g.log.Infof("Transport schedule created: id=%d, route=%s, type=%s", record.ID, record.Route, record.TransportType)
	return true, nil
}

func (g *transportScheduleGateway) GetAll(ctx context.Context) ([]entity.TransportSchedule, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := g.repos.TransportSchedule.FindAll(ctx, db)
	if err != nil {
		return nil, g.storeFailure("list transport schedules", err)
	}
	return schedules, nil
}

func (g *transportScheduleGateway) GetByID(ctx context.Context, id int64) (entity.TransportSchedule, bool, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return entity.TransportSchedule{}, false, err
	}
	schedule, err := g.repos.TransportSchedule.FindByID(ctx, db, id)
	if err != nil {
		return entity.TransportSchedule{}, false, g.storeFailure(fmt.Sprintf("find transport schedule %d", id), err)
	}
	if schedule == nil {
		return entity.TransportSchedule{}, false, nil
	}
	return *schedule, true, nil
}

func (g *transportScheduleGateway) AssignPilgrim(ctx context.Context, pilgrimID, scheduleID int64) (bool, error) {
	tx, err := g.begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if err := g.requirePilgrim(ctx, tx, pilgrimID, "check assigned pilgrim"); err != nil {
		return false, err
	}
	schedule, err := g.repos.TransportSchedule.FindByID(ctx, tx, scheduleID)
	if err != nil {
		return false, g.storeFailure("find transport schedule", err)
	}
	if schedule == nil {
		return false, fmt.Errorf("%w: transport schedule %d", errs.ErrForeignKeyMissing, scheduleID)
	}

	added, err := g.insertPair(ctx, tx, g.repos.PilgrimTransport, pilgrimID, scheduleID, "assign pilgrim to transport")
	if err != nil || !added {
		return false, err
	}
	if err := g.commit(tx, "transport assignment"); err != nil {
		return false, err
	}

	g.log.Infof("Pilgrim assigned to transport: pilgrim=%d, schedule=%d", pilgrimID, scheduleID)
	return true, nil
}

func (g *transportScheduleGateway) ListForPilgrim(ctx context.Context, pilgrimID int64) ([]entity.TransportSchedule, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := g.repos.PilgrimTransport.ResourceIDsByPilgrim(ctx, db, pilgrimID)
	if err != nil {
		return nil, g.storeFailure("list pilgrim transport", err)
	}
	schedules, err := g.repos.TransportSchedule.FindByIDs(ctx, db, ids)
	if err != nil {
		return nil, g.storeFailure("load pilgrim transport", err)
	}
	return schedules, nil
}
