package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
)

const sqliteBusyTimeoutMS = "5000"

// NewConnectSQLite opens the client's SQLite file. The driver creates the
// file, its directory is created here.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	dsn, err := sqliteDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("bad session database path")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("open %s: %w", cfg.DSN, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// sqliteDSN turns a file path into a go-sqlite3 URI. ":memory:" and values
// that already are URIs are passed through.
func sqliteDSN(path string) (string, error) {
	switch {
	case path == "":
		return "", errors.New("session database path is empty")
	case path == ":memory:", strings.HasPrefix(path, "file:"):
		return path, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create session database directory: %w", err)
		}
	}

	q := url.Values{}
	q.Set("_busy_timeout", sqliteBusyTimeoutMS)
	q.Set("mode", "rwc")
	return "file:" + filepath.ToSlash(filepath.Clean(path)) + "?" + q.Encode(), nil
}
