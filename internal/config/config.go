// Package config manages environment variables.
//
// It reads variables from the `.env` file, an optional YAML file and the
// process environment, loads them into structured Go types (struct), and
// validates them so they can be reused across the application runtime.
//
// Responsibilities:
//   - Provide defaults so both services start with no configuration at all.
//   - Layer an optional YAML file and then env vars on top of the defaults.
//   - Validate values so the app fails fast on bad config.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every env var read by Load.
	EnvPrefix = "ITEMDEMO_"

	// FileEnvVar names an optional YAML config file.
	FileEnvVar = EnvPrefix + "CONFIG"

	// ServiceItems is the item creation route group.
	ServiceItems = "items"

	// ServiceAliases is the query aliasing route group.
	ServiceAliases = "aliases"
)

/*
	Env vars are read using the ITEMDEMO_ prefix. Keys are lowercased and a
	double underscore separates nesting levels, so single underscores stay
	part of the key name:

	  ITEMDEMO_SERVER__PORT                 -> server.port
	  ITEMDEMO_SERVER__CORS_ALLOWED_ORIGINS -> server.cors_allowed_origins
	  ITEMDEMO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Host               string   `koanf:"host"`
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimit is the allowed requests per second per client IP. 0 disables it.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`

	// Services selects the route groups registered by cmd/server.
	Services []string `koanf:"services" validate:"dive,oneof=items aliases"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// HasService reports whether name is in the enabled services.
func (s ServerConfig) HasService(name string) bool {
	for _, svc := range s.Services {
		if svc == name {
			return true
		}
	}
	return false
}

// New returns the default configuration: every interface, port 8000.
func New() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8000",
			ReadTimeout:     30,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Observability: *DefaultObservabilityConfig(),
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ITEMDEMO_CONFIG is set
//  3. env (prefix ITEMDEMO_)
//
// serviceName tags logs and traces. It is stored on the observability block.
func Load(serviceName string) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(FileEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrLoadConfig, err)
	}

	// Slices are merged element-wise by the decoder, so their defaults are
	// only applied when nothing was configured.
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if len(cfg.Server.Services) == 0 {
		cfg.Server.Services = []string{ServiceItems, ServiceAliases}
	}

	cfg.Observability.ServiceName = serviceName
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and the observability block.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
