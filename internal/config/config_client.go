package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the feedback server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// It has to outlast a full submit round-trip on the server.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// HeartbeatInterval is how often the client checks that the server is
	// reachable while the UI is open.
	// Env: CLIENT_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// ClientStorage holds the local session store settings.
type ClientStorage struct {
	// DSN is the SQLite file that keeps the signed-in user between runs.
	// Env: CLIENT_SESSION_DB
	DSN string `env:"SESSION_DB"`
}

// ClientAudio holds playback settings.
type ClientAudio struct {
	// PlayerCommand is the external program used to play WAV files. The
	// file path is appended as the last argument. Empty disables playback.
	// Env: CLIENT_PLAYER
	PlayerCommand string `env:"PLAYER"`
}

// ClientConfig is the top-level terminal client configuration.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Audio   ClientAudio
	// LogFile receives the client log; the terminal itself belongs to the UI.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

type clientEnvConfig struct {
	Config ClientConfig `envPrefix:"CLIENT_"`
}

// DefaultHeartbeatInterval is used when no interval is configured.
const DefaultHeartbeatInterval = 15 * time.Second

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:         "http://localhost:8080",
			RequestTimeout:    3 * time.Minute,
			HeartbeatInterval: DefaultHeartbeatInterval,
		},
		Storage: ClientStorage{
			DSN: "feedback-client.db",
		},
		Audio: ClientAudio{
			PlayerCommand: "aplay",
		},
		LogFile:  "feedback-client.log",
		LogLevel: "info",
	}
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.ServerURL, "s", "", "Feedback server URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.HeartbeatInterval, "heartbeat", 0, "Server heartbeat interval")
	fs.StringVar(&cfg.Storage.DSN, "db", "", "Local session SQLite file")
	fs.StringVar(&cfg.Audio.PlayerCommand, "player", "", "WAV player command")
	fs.StringVar(&cfg.LogFile, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return cfg, nil
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	envCfg, err := parseEnv[clientEnvConfig]()
	if err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{defaultClientConfig(), &envCfg.Config, flagsCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

// GetClientConfig builds and validates the terminal client configuration from
// defaults, CLIENT_* environment variables, and command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}
