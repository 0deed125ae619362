package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly
// duration fields.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		TimeZone      string   `json:"time_zone"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		GRPCAddress         string   `json:"grpc_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"server,omitempty"`

	Adapter struct {
		Gemini struct {
			APIKey         string   `json:"api_key"`
			BaseURL        string   `json:"base_url"`
			Model          string   `json:"model"`
			RequestTimeout Duration `json:"request_timeout"`
			MaxAttempts    int      `json:"max_attempts"`
			BackoffBase    Duration `json:"backoff_base"`
			HistoryLimit   int      `json:"history_limit"`
			PromptPath     string   `json:"prompt_path"`
		} `json:"gemini,omitempty"`
		VoiceVox struct {
			BaseURL        string   `json:"base_url"`
			RequestTimeout Duration `json:"request_timeout"`
			SpeedScale     float64  `json:"speed_scale"`
			VolumeScale    float64  `json:"volume_scale"`
		} `json:"voicevox,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReapInterval   Duration `json:"reap_interval"`
		SessionIdleTTL Duration `json:"session_idle_ttl"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the config file at path. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err = dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	gemini := jsonCfg.Adapter.Gemini
	voiceVox := jsonCfg.Adapter.VoiceVox

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			TimeZone:      jsonCfg.App.TimeZone,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			GRPCAddress:         jsonCfg.Server.GRPCAddress,
			RequestTimeout:      time.Duration(jsonCfg.Server.RequestTimeout),
			HealthCheckInterval: time.Duration(jsonCfg.Server.HealthCheckInterval),
		},
		Adapter: Adapter{
			Gemini: Gemini{
				APIKey:         gemini.APIKey,
				BaseURL:        gemini.BaseURL,
				Model:          gemini.Model,
				RequestTimeout: time.Duration(gemini.RequestTimeout),
				MaxAttempts:    gemini.MaxAttempts,
				BackoffBase:    time.Duration(gemini.BackoffBase),
				HistoryLimit:   gemini.HistoryLimit,
				PromptPath:     gemini.PromptPath,
			},
			VoiceVox: VoiceVox{
				BaseURL:        voiceVox.BaseURL,
				RequestTimeout: time.Duration(voiceVox.RequestTimeout),
				SpeedScale:     voiceVox.SpeedScale,
				VolumeScale:    voiceVox.VolumeScale,
			},
		},
		Workers: Workers{
			ReapInterval:   time.Duration(jsonCfg.Workers.ReapInterval),
			SessionIdleTTL: time.Duration(jsonCfg.Workers.SessionIdleTTL),
		},
	}

	return cfg, nil
}

// Duration decodes either a Go duration string ("90s") or integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
