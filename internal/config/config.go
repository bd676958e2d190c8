// Package config loads the settings of the xlogotel command.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	xlog "github.com/trickstertwo/xlog-otel"
)

// EnvPrefix selects the environment variables read by Load.
// XLOGOTEL_OTLP_ENDPOINT maps to otlp.endpoint.
const EnvPrefix = "XLOGOTEL_"

// Exporters
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// OTLP compression
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
)

// Console drains
const (
	ConsoleZerolog = "zerolog"
	ConsoleZap     = "zap"
	ConsoleSlog    = "slog"
)

// OTLP protocols
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

type Config struct {
	Service  ServiceConfig `koanf:"service"`
	Log      LogConfig     `koanf:"log"`
	Exporter string        `koanf:"exporter"`
	OTLP     OTLPConfig    `koanf:"otlp"`
}

type ServiceConfig struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
}

type LogConfig struct {
	Level   string        `koanf:"level"`
	Console ConsoleConfig `koanf:"console"`
	Caller  bool          `koanf:"caller"`
	// Nested keeps structured values as OTel maps and slices instead of text.
	Nested bool `koanf:"nested"`
	UID    bool `koanf:"uid"`
	// Resource copies the service resource onto every record.
	Resource bool `koanf:"resource"`
}

// ConsoleConfig selects the drain teed next to OTel for local output.
// An empty Format means zerolog.
type ConsoleConfig struct {
	Enabled bool   `koanf:"enabled"`
	Format  string `koanf:"format"`
}

type OTLPConfig struct {
	Protocol    string        `koanf:"protocol"`
	Endpoint    string        `koanf:"endpoint"`
	Insecure    bool          `koanf:"insecure"`
	Timeout     time.Duration `koanf:"timeout"`
	Compression string        `koanf:"compression"`
}

// MinLevel returns the parsed log level. Validate guarantees it parses.
func (c *Config) MinLevel() xlog.Level {
	lvl, err := xlog.ParseLevel(c.Log.Level)
	if err != nil {
		return xlog.LevelInfo
	}
	return lvl
}

// Load reads configuration with priority:
// 1. Environment variables prefixed with EnvPrefix
// 2. The YAML file at path, when path is not empty
// 3. Defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(envprovider.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"service.name":    "xlogotel",
		"service.version": "v0.3.0",

		"log.level":           "trace",
		"log.console.enabled": true,
		"log.console.format":  ConsoleZerolog,
		"log.caller":          false,
		"log.nested":          false,
		"log.uid":             false,
		"log.resource":        false,

		"exporter": ExporterStdout,

		"otlp.protocol":    ProtocolGRPC,
		"otlp.endpoint":    "127.0.0.1:4317",
		"otlp.insecure":    true,
		"otlp.timeout":     "1s",
		"otlp.compression": CompressionNone,
	}
	return k.Load(confmap.Provider(defaults, "."), nil)
}

func Validate(cfg *Config) error {
	if cfg.Service.Name == "" {
		return fmt.Errorf("service config: %w", ErrMissingServiceName)
	}
	if _, err := xlog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	switch cfg.Log.Console.Format {
	case "", ConsoleZerolog, ConsoleZap, ConsoleSlog:
	default:
		return fmt.Errorf("log config: %w: %q", ErrInvalidConsoleFormat, cfg.Log.Console.Format)
	}

	switch cfg.Exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		return validateOTLP(&cfg.OTLP)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExporter, cfg.Exporter)
	}
}

func validateOTLP(cfg *OTLPConfig) error {
	if cfg.Protocol != ProtocolGRPC && cfg.Protocol != ProtocolHTTP {
		return fmt.Errorf("otlp config: %w: %q", ErrInvalidProtocol, cfg.Protocol)
	}
	if cfg.Endpoint == "" {
		return fmt.Errorf("otlp config: %w", ErrMissingEndpoint)
	}
	if cfg.Compression != CompressionNone && cfg.Compression != CompressionGzip {
		return fmt.Errorf("otlp config: %w: %q", ErrInvalidCompression, cfg.Compression)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("otlp config: %w", ErrInvalidTimeout)
	}
	return nil
}
