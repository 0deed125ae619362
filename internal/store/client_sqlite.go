package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/models"
)

// localSessionStorage is the SQLite-backed [LocalSessionStore]. The session is
// stored as a JSON document under [localSessionKey].
type localSessionStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionStore creates the session table if needed and returns the
// store.
func NewLocalSessionStore(ctx context.Context, db *DB, log *logger.Logger) (LocalSessionStore, error) {
	if db == nil || db.DB == nil {
		return nil, ErrDBIsNil
	}

	if _, err := db.ExecContext(ctx, createLocalSessionTable); err != nil {
		log.Err(err).Str("func", "NewLocalSessionStore").Msg("error creating local session table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &localSessionStorage{db: db, logger: log}, nil
}

func (s *localSessionStorage) Load(ctx context.Context) (models.LocalSession, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, getLocalSession, localSessionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "localSessionStorage.Load").Msg("error reading local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var session models.LocalSession
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn().Err(err).Str("func", "localSessionStorage.Load").Msg("stored session is malformed")
		return models.LocalSession{}, ErrLocalSessionNotFound
	}

	if !session.Valid() {
		s.logger.Warn().Str("func", "localSessionStorage.Load").Msg("stored session is incomplete")
		return models.LocalSession{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *localSessionStorage) Store(ctx context.Context, session models.LocalSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode local session: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, upsertLocalSession, localSessionKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "localSessionStorage.Store").Msg("error writing local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localSessionStorage) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalSession, localSessionKey); err != nil {
		s.logger.Err(err).Str("func", "localSessionStorage.Clear").Msg("error deleting local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
