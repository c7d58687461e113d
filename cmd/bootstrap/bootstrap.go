package bootstrap

import (
	"context"
	"fmt"
	"os"

	"hajj-guide/config"
	"hajj-guide/internal/gateway"
	"hajj-guide/internal/infrastructure/cache"
	"hajj-guide/internal/infrastructure/database"
	"hajj-guide/internal/session"
	"hajj-guide/pkg/jwt"
	"hajj-guide/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// developmentSecret signs session tokens when SESSION_SECRET is unset in development.
const developmentSecret = "hajj-guide-development-secret"

// Gateways groups the persistence units handed to the presentation layer.
type Gateways struct {
	Pilgrims          gateway.PilgrimGateway
	MedicalProfiles   gateway.MedicalProfileGateway
	TransportSchedule gateway.TransportScheduleGateway
	Accommodations    gateway.AccommodationGateway
	Permits           gateway.PermitGateway
	Admins            gateway.AdminGateway
}

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Store       *database.Store
	RedisClient *redis.Client
	Gateways    Gateways
	Sessions    *session.Manager
}

// New creates a new App instance with all dependencies initialized.
// The store is opened lazily by the first gateway call.
func New(ctx context.Context, configPath string) (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	queryLevel := logger.Warn
	if cfg.IsDevelopment() {
		queryLevel = logger.Info
	}
	app.Store = database.NewStore(cfg.DB, log, database.WithQueryLogLevel(queryLevel))

	var registry session.Registry = session.NewMemoryRegistry()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		registry = session.NewRedisRegistry(redisClient)
	} else {
		log.Info("Redis not configured, keeping sessions in memory")
	}

	secret := cfg.Session.Secret
	if secret == "" {
		log.Warn("SESSION_SECRET is empty, using the development secret")
		secret = developmentSecret
	}

	app.Gateways = NewGateways(app.Store, log, cfg.DB.CascadeDelete)
	app.Sessions = session.NewManager(app.Gateways.Admins, jwt.NewJWTService(secret), registry, log)

	return app, nil
}

// NewGateways wires every gateway to one store handle.
func NewGateways(store gateway.Connector, log *logrus.Logger, cascadeDelete bool) Gateways {
	customValidator := validator.NewValidator()
	repos := gateway.NewRepositories()

	return Gateways{
		Pilgrims:          gateway.NewPilgrimGateway(store, log, customValidator, repos, cascadeDelete),
		MedicalProfiles:   gateway.NewMedicalProfileGateway(store, log, customValidator, repos),
		TransportSchedule: gateway.NewTransportScheduleGateway(store, log, customValidator, repos),
		Accommodations:    gateway.NewAccommodationGateway(store, log, customValidator, repos),
		Permits:           gateway.NewPermitGateway(store, log, customValidator, repos),
		Admins:            gateway.NewAdminGateway(store, log, customValidator, repos, 0),
	}
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// Close releases the store and the Redis connection.
func (app *App) Close() {
	if app.Store != nil {
		if err := app.Store.Release(); err != nil {
			app.Log.Errorf("Failed to release store: %v", err)
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Errorf("Failed to close Redis: %v", err)
		}
	}
}
