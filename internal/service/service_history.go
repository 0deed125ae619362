// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type historyService struct {
	logs  store.ProgressLogRepository
	users store.UserRepository

	dateValidator validators.Validator
	userValidator validators.Validator
	location      *time.Location

	logger *logger.Logger
}

// NewHistoryService constructs a HistoryService. Calendar days are resolved
// in cfg.TimeZone; an unknown zone falls back to UTC.
func NewHistoryService(logs store.ProgressLogRepository, users store.UserRepository, cfg config.App, log *logger.Logger) HistoryService {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("time_zone", cfg.TimeZone).Msg("unknown time zone, using UTC")
		location = time.UTC
	}

	return &historyService{
		logs:          logs,
		users:         users,
		dateValidator: validators.NewSessionValidator(),
		userValidator: validators.NewUserValidator(),
		location:      location,
		logger:        log,
	}
}

func (h *historyService) FetchLogs(ctx context.Context, date, userID string) []models.ProgressLog {
	log := logger.FromContext(ctx)

	if date == "" || userID == "" {
		return []models.ProgressLog{}
	}

	from, to, err := h.dayRange(ctx, date)
	if err != nil {
		log.Err(err).Str("date", date).Msg("cannot resolve day range")
		return []models.ProgressLog{}
	}

	logs, err := h.logs.FindLogsInRange(ctx, userID, from, to)
	if err != nil {
		log.Err(err).Str("date", date).Str("user_id", userID).Msg("fetching logs failed")
		return []models.ProgressLog{}
	}
	if logs == nil {
		logs = []models.ProgressLog{}
	}

	return logs
}

// dayRange returns [date 00:00, date+1 00:00) in the configured location.
func (h *historyService) dayRange(ctx context.Context, date string) (time.Time, time.Time, error) {
	if err := h.dateValidator.Validate(ctx, validators.LogDate(date)); err != nil {
		return time.Time{}, time.Time{}, err
	}

	from, err := time.ParseInLocation(validators.DateLayout, date, h.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", validators.ErrInvalidDate, err)
	}

	return from, from.AddDate(0, 0, 1), nil
}

func (h *historyService) RecentLogs(ctx context.Context, userID string, limit int) ([]models.ProgressLog, error) {
	if userID == "" {
		return nil, validators.ErrEmptyUserID
	}

	logs, err := h.logs.FindRecentLogs(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent logs: %w", err)
	}

	return logs, nil
}

func (h *historyService) AppendLog(ctx context.Context, progressLog models.ProgressLog) *models.ProgressLog {
	log := logger.FromContext(ctx)

	saved, err := h.logs.SaveLog(ctx, progressLog)
	if err != nil {
		log.Err(err).Str("chat_id", progressLog.ChatID).Msg("saving progress log failed")
		return nil
	}

	return &saved
}

func (h *historyService) GetLog(ctx context.Context, chatID, userID string) (models.ProgressLog, error) {
	if chatID == "" || userID == "" {
		return models.ProgressLog{}, store.ErrProgressLogNotFound
	}

	progressLog, err := h.logs.FindLogByID(ctx, chatID, userID)
	if err != nil {
		return models.ProgressLog{}, fmt.Errorf("fetching progress log: %w", err)
	}

	return progressLog, nil
}

func (h *historyService) UpdateUserCharacter(ctx context.Context, userID string, characterID int) models.UpdateResult {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.UpdateResult{Error: validators.ErrEmptyUserID.Error()}
	}
	if err := h.userValidator.Validate(ctx, models.CharacterUpdateRequest{CharacterID: characterID}); err != nil {
		return models.UpdateResult{Error: err.Error()}
	}

	err := h.users.UpdateCharacter(ctx, userID, characterID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UpdateResult{Error: err.Error()}
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Int("character_id", characterID).Msg("updating character failed")
		return models.UpdateResult{Error: "failed to update character"}
	}

	return models.UpdateResult{Success: true}
}
