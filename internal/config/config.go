// Package config loads the builder's runtime settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

// Config is the process configuration. Every field maps to a VTM_ variable.
type Config struct {
	GRPCPort      int           `env:"GRPC_PORT" envDefault:"50051"`
	MetricsPort   int           `env:"METRICS_PORT" envDefault:"9090"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CatalogPath   string        `env:"CATALOG_PATH"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

// EnvPrefix is prepended to every variable name
const EnvPrefix = "VTM_"

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("MetricsPort", c.MetricsPort, 0, 65535, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRange("RedisDB", c.RedisDB, 0, 15, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("SessionTTL", "must be positive")
	}
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SlogLevel converts LogLevel for slog handlers
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
