package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

var (
	errAddressForm = errors.New("address must look like host:port")
	errPortRange   = errors.New("port must be in 1-65535")
	errBadHost     = errors.New("host is neither an IP nor a hostname")
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". Hosts are either IP
// literals or DNS labels so compose service names like "voicevox" pass.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %q", errAddressForm, s)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %q", errAddressForm, s)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("%w: %q", errBadHost, host)
	}

	a.Host, a.Port = host, port
	return nil
}

func isHostname(h string) bool {
	if len(h) > 253 {
		return false
	}
	label := 0
	for i := 0; i < len(h); i++ {
		c := h[i]
		switch {
		case c == '.':
			if label == 0 {
				return false
			}
			label = 0
		case c == '-':
			if label == 0 || i == len(h)-1 || h[i+1] == '.' {
				return false
			}
			label++
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			label++
		default:
			return false
		}
		if label > 63 {
			return false
		}
	}
	return label > 0
}

// parseFlags reads server flags from args. Unset flags stay zero so the
// builder can merge them over defaults and env.
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg         StructuredConfig
		httpAddress NetAddress
		grpcAddress NetAddress
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (alias of -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime")
	fs.StringVar(&cfg.App.TimeZone, "tz", "", "IANA zone of calendar days")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "zerolog level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "inbound request timeout")
	fs.StringVar(&cfg.Adapter.Gemini.APIKey, "gemini-key", "", "Gemini API key")
	fs.StringVar(&cfg.Adapter.Gemini.Model, "gemini-model", "", "Gemini model")
	fs.StringVar(&cfg.Adapter.VoiceVox.BaseURL, "voicevox", "", "VOICEVOX engine URL")
	fs.Float64Var(&cfg.Adapter.VoiceVox.SpeedScale, "speed", 0, "VOICEVOX speedScale")
	fs.Float64Var(&cfg.Adapter.VoiceVox.VolumeScale, "volume", 0, "VOICEVOX volumeScale")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}
