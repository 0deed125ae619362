// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the feedback server,
// merged from defaults, environment variables, flags and a JSON file.
type StructuredConfig struct {
	// App holds token parameters, time zone, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound integrations (Gemini, VOICEVOX).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the background session reaper.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TimeZone is the IANA location used to resolve calendar days when
	// fetching logs by date (e.g. "Asia/Tokyo").
	// Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. It has to be longer
	// than the whole feedback pipeline including retries.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthCheckInterval is how often the gRPC health status is refreshed
	// by pinging the database and the speech engine.
	// Env: SERVER_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// Adapter holds configuration for the outbound integrations.
type Adapter struct {
	Gemini   Gemini   `envPrefix:"GEMINI_"`
	VoiceVox VoiceVox `envPrefix:"VOICEVOX_"`
}

// Gemini holds settings of the text-generation API.
type Gemini struct {
	// APIKey is sent as the "key" query parameter.
	// Env: ADAPTER_GEMINI_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the API root, e.g. "https://generativelanguage.googleapis.com/v1beta".
	// Env: ADAPTER_GEMINI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the model name used in the generateContent path.
	// Env: ADAPTER_GEMINI_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single generateContent call.
	// Env: ADAPTER_GEMINI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxAttempts is the number of calls made before giving up.
	// Env: ADAPTER_GEMINI_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the first wait between attempts; it doubles afterwards.
	// Env: ADAPTER_GEMINI_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// HistoryLimit is how many recent logs are fed into the prompt.
	// Env: ADAPTER_GEMINI_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// PromptPath optionally replaces the embedded prompt template.
	// Env: ADAPTER_GEMINI_PROMPT_PATH
	PromptPath string `env:"PROMPT_PATH"`
}

// VoiceVox holds settings of the speech-synthesis engine.
type VoiceVox struct {
	// BaseURL is the engine root, e.g. "http://localhost:50021".
	// Env: ADAPTER_VOICEVOX_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds each of the two synthesis stages.
	// Env: ADAPTER_VOICEVOX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SpeedScale overrides the speedScale of every synthesis query.
	// Env: ADAPTER_VOICEVOX_SPEED_SCALE
	SpeedScale float64 `env:"SPEED_SCALE"`

	// VolumeScale overrides the volumeScale of every synthesis query.
	// Env: ADAPTER_VOICEVOX_VOLUME_SCALE
	VolumeScale float64 `env:"VOLUME_SCALE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReapInterval is how often idle sessions are looked for.
	// Env: WORKERS_REAP_INTERVAL
	ReapInterval time.Duration `env:"REAP_INTERVAL"`

	// SessionIdleTTL is how long a session may stay untouched before its
	// transcript and audio are dropped.
	// Env: WORKERS_SESSION_IDLE_TTL
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL"`
}

// defaultConfig returns the values used for every field that no source sets.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-ai-feedback",
			TokenDuration: 24 * time.Hour,
			TimeZone:      "UTC",
			Version:       "dev",
			LogLevel:      "debug",
		},
		Server: Server{
			HTTPAddress:         "localhost:8080",
			RequestTimeout:      2 * time.Minute,
			HealthCheckInterval: 15 * time.Second,
		},
		Adapter: Adapter{
			Gemini: Gemini{
				BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
				Model:          "gemini-2.5-flash-preview-09-2025",
				RequestTimeout: 30 * time.Second,
				MaxAttempts:    3,
				BackoffBase:    time.Second,
				HistoryLimit:   5,
			},
			VoiceVox: VoiceVox{
				BaseURL:        "http://localhost:50021",
				RequestTimeout: 30 * time.Second,
				SpeedScale:     1.15,
				VolumeScale:    1.7,
			},
		},
		Workers: Workers{
			ReapInterval:   time.Minute,
			SessionIdleTTL: 30 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and validates the server configuration. Later
// sources win for non-zero fields: defaults, env, flags, then the JSON file
// whose path comes from env or flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
