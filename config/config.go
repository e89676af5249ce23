package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	// JWTSecret signs every issued bearer token; rotating it invalidates
	// all outstanding sessions at once.
	JWTSecret string `env:"JWT_SECRET,required" validate:"required,min=32"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto slog's level type.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
