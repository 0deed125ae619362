// Package migrations embeds the PostgreSQL schema of the feedback server.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// NewProvider returns a goose provider over the embedded migrations.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	if db == nil {
		return nil, errNilDB
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fs.FS(embedMigrations))
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration and returns the versions it
// applied.
func Migrate(ctx context.Context, db *sql.DB) ([]int64, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
