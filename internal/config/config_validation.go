// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
		return fmt.Errorf("%w: time zone %q: %v", ErrInvalidAppConfigs, cfg.App.TimeZone, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	gemini := cfg.Adapter.Gemini
	if gemini.BaseURL == "" || gemini.Model == "" || gemini.MaxAttempts < 1 || gemini.HistoryLimit < 0 {
		return fmt.Errorf("%w: gemini", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.VoiceVox.BaseURL == "" {
		return fmt.Errorf("%w: voicevox", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ReapInterval <= 0 || cfg.Workers.SessionIdleTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
