package store

import (
	"database/sql"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/migrations"
)

// DB is the local database handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
