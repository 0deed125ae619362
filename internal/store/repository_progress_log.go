// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/models"
)

// progressLogRepository is the PostgreSQL-backed implementation of
// [ProgressLogRepository] over the "progress_logs" table.
type progressLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewProgressLogRepository constructs a [ProgressLogRepository] backed by the
// provided database connection and logger.
func NewProgressLogRepository(db *DB, logger *logger.Logger) ProgressLogRepository {
	logger.Debug().Msg("creating progress log repository")
	return &progressLogRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLog inserts a single log. There is no retry; the caller decides what a
// failed save means for the user.
func (p *progressLogRepository) SaveLog(ctx context.Context, progressLog models.ProgressLog) (models.ProgressLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveLogQuery(progressLog)
	if err != nil {
		return models.ProgressLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "progressLogRepository.SaveLog").
			Str("user_id", progressLog.UserID).
			Str("chat_id", progressLog.ChatID).
			Msg("failed to insert progress log")
		return models.ProgressLog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return progressLog, nil
}

func (p *progressLogRepository) FindLogsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.ProgressLog, error) {
	query, args, err := buildLogsInRangeQuery(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryLogs(ctx, "progressLogRepository.FindLogsInRange", userID, query, args)
}

func (p *progressLogRepository) FindRecentLogs(ctx context.Context, userID string, limit int) ([]models.ProgressLog, error) {
	if limit <= 0 {
		return []models.ProgressLog{}, nil
	}

	query, args, err := buildRecentLogsQuery(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryLogs(ctx, "progressLogRepository.FindRecentLogs", userID, query, args)
}

// FindLogByID returns [ErrProgressLogNotFound] when the log does not exist or
// is owned by someone else.
func (p *progressLogRepository) FindLogByID(ctx context.Context, chatID, userID string) (models.ProgressLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLogByIDQuery(chatID, userID)
	if err != nil {
		return models.ProgressLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.ProgressLog
	err = p.DB.QueryRowContext(ctx, query, args...).
		Scan(&item.ChatID, &item.UserID, &item.ChatLog, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProgressLog{}, ErrProgressLogNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "progressLogRepository.FindLogByID").
			Str("chat_id", chatID).
			Msg("failed to scan progress log row")
		return models.ProgressLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (p *progressLogRepository) queryLogs(ctx context.Context, funcName, userID, query string, args []any) ([]models.ProgressLog, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("failed to execute query for progress logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ProgressLog, 0, 8)

	for rows.Next() {
		var item models.ProgressLog

		scanErr := rows.Scan(&item.ChatID, &item.UserID, &item.ChatLog, &item.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Str("user_id", userID).
				Msg("failed to scan progress log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
