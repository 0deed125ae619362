package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredConfig carries the fields that have no defaults.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/feedback"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsPlusRequired(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, 3, cfg.Adapter.Gemini.MaxAttempts)
	assert.Equal(t, 5, cfg.Adapter.Gemini.HistoryLimit)
	assert.Equal(t, time.Second, cfg.Adapter.Gemini.BackoffBase)
	assert.InDelta(t, 1.15, cfg.Adapter.VoiceVox.SpeedScale, 1e-9)
	assert.InDelta(t, 1.7, cfg.Adapter.VoiceVox.VolumeScale, 1e-9)
	assert.Equal(t, "http://localhost:50021", cfg.Adapter.VoiceVox.BaseURL)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
}

func TestBuild_ZeroFieldsDoNotOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredConfig(), &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.ErrorIs(t, b.err, ErrInvalidFlags)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "from-json", "time_zone": "Asia/Tokyo"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json"}},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, "Asia/Tokyo", cfg.App.TimeZone)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown time zone",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TimeZone = "Mars/Olympus" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Gemini.MaxAttempts = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing voicevox url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.VoiceVox.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero reap interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.ReapInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.App.TokenSignKey = "secret"
			cfg.Storage.DB.DSN = "postgres://localhost/feedback"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
