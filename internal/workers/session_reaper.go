// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
)

// SessionReaper periodically drops sessions nobody touched for longer than
// the idle TTL, releasing their audio.
type SessionReaper struct {
	sessions service.SessionService
	interval time.Duration
	ttl      time.Duration
	logger   *logger.Logger
}

func NewSessionReaper(sessions service.SessionService, interval, ttl time.Duration, logger *logger.Logger) *SessionReaper {
	return &SessionReaper{
		sessions: sessions,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (r *SessionReaper) Run(ctx context.Context) {
	r.logger.Info().
		Dur("interval", r.interval).
		Dur("ttl", r.ttl).
		Msg("session reaper started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("session reaper stopped")
			return
		case <-ticker.C:
			if reaped := r.sessions.ReapIdle(ctx, r.ttl); reaped > 0 {
				r.logger.Info().Int("sessions", reaped).Msg("idle sessions reaped")
			}
		}
	}
}
