package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"hajj-guide/config"
	"hajj-guide/internal/domain/errs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pingTimeout = 5 * time.Second

// Store is the process-wide handle to the relational store. The underlying
// pool is opened lazily on the first Acquire and closed by Release; a later
// Acquire opens a fresh pool. Callers must not close what Acquire returns.
type Store struct {
	cfg config.DBConfig
	log *logrus.Logger

	gormLevel logger.LogLevel

	mu sync.Mutex
	db *gorm.DB
}

type Option func(*Store)

// WithQueryLogLevel sets gorm's SQL logger level.
func WithQueryLogLevel(level logger.LogLevel) Option {
	return func(s *Store) {
		s.gormLevel = level
	}
}

func NewStore(cfg config.DBConfig, log *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		cfg:       cfg,
		log:       log,
		gormLevel: logger.Warn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire returns the shared pool bound to ctx, opening it on first use.
func (s *Store) Acquire(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		db, err := s.open(ctx)
		if err != nil {
			return nil, err
		}
		s.db = db
	}
	return s.db.WithContext(ctx), nil
}

// Release closes the pool if it is open.
func (s *Store) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		s.log.Warnf("Failed to close database pool: %+v", err)
		return err
	}
	s.log.Info("Database connection released")
	return nil
}

func (s *Store) open(ctx context.Context) (*gorm.DB, error) {
	dialector, err := NewDialector(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(s.gormLevel),
	})
	if err != nil {
		s.log.Warnf("Failed to open %s store: %+v", s.cfg.Driver, err)
		return nil, fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get database instance: %w", errs.ErrStoreUnavailable, err)
	}
	s.configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		s.log.Warnf("Failed to reach %s store: %+v", s.cfg.Driver, err)
		return nil, fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}

	s.log.Infof("Connected to %s store", dialector.Name())
	return db, nil
}

func (s *Store) configurePool(sqlDB *sql.DB) {
	// Each connection to an in-memory SQLite database sees its own empty
	// database, so the pool is pinned to a single long-lived connection.
	if isMemorySQLite(s.cfg) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return
	}
	if s.cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(s.cfg.MaxOpenConns)
	}
	if s.cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(s.cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}
