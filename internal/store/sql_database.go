package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/migrations"
)

// DB wraps a *sql.DB together with the logger and the error classifier of the
// backend it was opened for.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if len(applied) == 0 {
		db.logger.Info().Msg("database schema is up to date")
	} else {
		db.logger.Info().Ints64("versions", applied).Msg("applied migrations")
	}
	return nil
}
