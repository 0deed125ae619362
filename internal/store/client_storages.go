package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
)

// ClientStorages groups the client-side storage of the terminal client.
type ClientStorages struct {
	// LocalSession remembers the signed-in user between runs.
	LocalSession LocalSessionStore

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DSN, creating it if it
// does not exist yet, and prepares the session table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessions, err := NewLocalSessionStore(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{
		LocalSession: sessions,
		db:           db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
