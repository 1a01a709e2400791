package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that is passed to the service layer.
type ClientStorages struct {
	// SessionSlots stores the persisted session.
	SessionSlots SessionSlotRepository

	db *DB
}

// NewClientStorages opens the sqlite file named by cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionSlots: NewSessionSlotRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
