package gateway_test

import (
	"context"
	"io"
	"testing"

	"hajj-guide/config"
	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/gateway"
	"hajj-guide/internal/infrastructure/database"
	"hajj-guide/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

const (
	seedAdminID       = int64(42)
	seedAdminPassword = "p@ss"
)

// GatewaySuite exercises every gateway against a freshly migrated store.
// openStore decides which store backs the run; reset, when set, empties a
// store that outlives a single test.
type GatewaySuite struct {
	suite.Suite

	openStore func(log *logrus.Logger) *database.Store
	reset     func(ctx context.Context, store *database.Store) error

	ctx   context.Context
	log   *logrus.Logger
	store *database.Store
	repos gateway.Repositories
	v     *validator.CustomValidator

	pilgrims       gateway.PilgrimGateway
	profiles       gateway.MedicalProfileGateway
	transport      gateway.TransportScheduleGateway
	accommodations gateway.AccommodationGateway
	permits        gateway.PermitGateway
	admins         gateway.AdminGateway
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, &GatewaySuite{openStore: memoryStore})
}

func memoryStore(log *logrus.Logger) *database.Store {
	cfg := config.DBConfig{Driver: config.DriverSQLite, Name: ":memory:"}
	return database.NewStore(cfg, log, database.WithQueryLogLevel(logger.Silent))
}

func (s *GatewaySuite) SetupTest() {
	s.ctx = context.Background()
	s.log = logrus.New()
	s.log.SetOutput(io.Discard)

	s.store = s.openStore(s.log)
	s.Require().NoError(s.store.Migrate(s.ctx))
	if s.reset != nil {
		s.Require().NoError(s.reset(s.ctx, s.store))
	}

	s.repos = gateway.NewRepositories()
	s.v = validator.NewValidator()
	s.pilgrims = s.newPilgrimGateway(false)
	s.profiles = gateway.NewMedicalProfileGateway(s.store, s.log, s.v, s.repos)
	s.transport = gateway.NewTransportScheduleGateway(s.store, s.log, s.v, s.repos)
	s.accommodations = gateway.NewAccommodationGateway(s.store, s.log, s.v, s.repos)
	s.permits = gateway.NewPermitGateway(s.store, s.log, s.v, s.repos)
	s.admins = gateway.NewAdminGateway(s.store, s.log, s.v, s.repos, bcrypt.MinCost)

	ok, err := s.admins.Create(s.ctx, &entity.Admin{
		ID:       seedAdminID,
		Name:     "Sara",
		Phone:    "0550000000",
		Email:    "s@x",
		Password: seedAdminPassword,
	})
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *GatewaySuite) TearDownTest() {
	s.Require().NoError(s.store.Release())
}

func (s *GatewaySuite) newPilgrimGateway(cascade bool) gateway.PilgrimGateway {
	return gateway.NewPilgrimGateway(s.store, s.log, s.v, s.repos, cascade)
}

func newPilgrim(id int64, name string) entity.Pilgrim {
	return entity.Pilgrim{
		ID:          id,
		Name:        name,
		Phone:       "0501234567",
		Nationality: "Saudi",
		Age:         30,
	}
}

func (s *GatewaySuite) mustCreatePilgrim(id int64) entity.Pilgrim {
	p := newPilgrim(id, "Pilgrim")
	ok, err := s.pilgrims.Create(s.ctx, &p)
	s.Require().NoError(err)
	s.Require().True(ok)
	return p
}

func (s *GatewaySuite) mustCreateAccommodation(id int64, capacity int) entity.Accommodation {
	a := entity.Accommodation{
		ID:        id,
		HotelName: "Makkah Towers",
		RoomType:  "Quad",
		Capacity:  capacity,
		Address:   "Ibrahim Al Khalil St",
		AdminID:   seedAdminID,
	}
	ok, err := s.accommodations.Create(s.ctx, &a)
	s.Require().NoError(err)
	s.Require().True(ok)
	return a
}

func (s *GatewaySuite) mustCreateSchedule(id int64) entity.TransportSchedule {
	t := entity.TransportSchedule{
		ID:            id,
		DepartureTime: "06:30",
		ArrivalTime:   "08:00",
		Route:         "Makkah - Mina",
		TransportType: "Bus",
		AdminID:       seedAdminID,
	}
	ok, err := s.transport.Create(s.ctx, &t)
	s.Require().NoError(err)
	s.Require().True(ok)
	return t
}

func (s *GatewaySuite) mustCreatePermit(id int64) entity.Permit {
	p := entity.Permit{
		ID:          id,
		Name:        "Rawdah Visit",
		Location:    "Madinah",
		ServiceType: "Prayer",
	}
	ok, err := s.permits.Create(s.ctx, &p)
	s.Require().NoError(err)
	s.Require().True(ok)
	return p
}

func (s *GatewaySuite) mustCreateProfile(id, pilgrimID int64) entity.MedicalProfile {
	m := entity.MedicalProfile{
		ID:             id,
		BloodType:      "O+",
		Medications:    "Metformin",
		MedicalHistory: "Type 2 diabetes",
		PilgrimID:      pilgrimID,
		AdminID:        seedAdminID,
	}
	ok, err := s.profiles.Create(s.ctx, &m)
	s.Require().NoError(err)
	s.Require().True(ok)
	return m
}
