// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultAPIKey is the development credential used when API_KEY is unset.
const DefaultAPIKey = "dev-key-change-in-production"

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Service identity, reported by /api/v1/info
	AppName     string `env:"APP_NAME" envDefault:"DevSecOps Application"`
	AppVersion  string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment string `env:"NODE_ENV" envDefault:"development"`

	// Listener
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"3000"`

	// Shared secret expected in the X-API-Key header
	APIKey string `env:"API_KEY" envDefault:"dev-key-change-in-production"`

	// Debug enables verbose debug logging. Must stay off in deployed instances.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDefaultAPIKey reports whether the built-in development key is active.
func (c *Config) UsesDefaultAPIKey() bool {
	return c.APIKey == DefaultAPIKey
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("failed to parse config: API_KEY must not be empty")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("failed to parse config: PORT %d out of range", cfg.Port)
	}

	return cfg, nil
}
