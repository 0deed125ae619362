package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_AllSections(t *testing.T) {
	p := writeConfig(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "issuer",
			"token_duration": "1h",
			"time_zone": "Asia/Tokyo",
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"health_check_interval": 5000000000
		},
		"storage": {"db": {"dsn": "postgres://u:p@localhost/feedback"}},
		"adapter": {
			"gemini": {"api_key": "k", "max_attempts": 5, "backoff_base": "2s", "history_limit": 3},
			"voicevox": {"base_url": "http://voicevox:50021", "volume_scale": 2.0}
		},
		"workers": {"reap_interval": "15s", "session_idle_ttl": "1h"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, App{
		TokenSignKey:  "secret",
		TokenIssuer:   "issuer",
		TokenDuration: time.Hour,
		TimeZone:      "Asia/Tokyo",
		LogLevel:      "info",
	}, cfg.App)
	assert.Equal(t, Server{
		HTTPAddress:         "localhost:8080",
		GRPCAddress:         "localhost:9090",
		RequestTimeout:      30 * time.Second,
		HealthCheckInterval: 5 * time.Second,
	}, cfg.Server)
	assert.Equal(t, "postgres://u:p@localhost/feedback", cfg.Storage.DB.DSN)
	assert.Equal(t, 5, cfg.Adapter.Gemini.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Adapter.Gemini.BackoffBase)
	assert.Equal(t, 3, cfg.Adapter.Gemini.HistoryLimit)
	assert.Equal(t, "http://voicevox:50021", cfg.Adapter.VoiceVox.BaseURL)
	assert.InDelta(t, 2.0, cfg.Adapter.VoiceVox.VolumeScale, 1e-9)
	assert.Equal(t, Workers{ReapInterval: 15 * time.Second, SessionIdleTTL: time.Hour}, cfg.Workers)
}

func TestParseJSON_PartialLeavesZeroes(t *testing.T) {
	cfg, err := parseJSON(writeConfig(t, `{"server": {"http_address": "127.0.0.1:8000"}}`))
	require.NoError(t, err)

	want := StructuredConfig{}
	want.Server.HTTPAddress = "127.0.0.1:8000"
	assert.Equal(t, want, *cfg)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "not json", body: `{ nope }`, want: "decode config file"},
		{name: "bad duration", body: `{"app": {"token_duration": "soon"}}`, want: "decode config file"},
		{name: "bool duration", body: `{"workers": {"reap_interval": true}}`, want: "string or integer nanoseconds"},
		{name: "unknown key", body: `{"server": {"http_adress": ":80"}}`, want: "http_adress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
