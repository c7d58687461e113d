package database

import (
	"context"
	"fmt"

	"hajj-guide/internal/domain/entity"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.Admin{},
		&entity.Pilgrim{},
		&entity.Permit{},
		&entity.Accommodation{},
		&entity.TransportSchedule{},
		&entity.MedicalProfile{},
		&entity.PilgrimTransport{},
		&entity.PilgrimAccommodation{},
		&entity.PilgrimPermit{},
	}
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	db, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		s.log.Warnf("Failed to migrate schema: %+v", err)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	s.log.Info("Schema migrated")
	return nil
}
