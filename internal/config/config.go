// Package config loads linsolve settings from LINSOLVE_* environment variables.
package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. LINSOLVE_TOLERANCE.
const Prefix = "linsolve"

// Config holds all application configuration.
type Config struct {
	Solver  SolverConfig
	Server  ServerConfig
	Logging LogConfig
}

// SolverConfig holds elimination settings.
type SolverConfig struct {
	Tolerance   float64 `envconfig:"TOLERANCE" default:"1e-12"`
	CheckFinite bool    `envconfig:"CHECK_FINITE" default:"true"`
}

// ServerConfig holds HTTP server configuration.
// MaxDimension bounds n for POST /v1/solve; 0 disables the limit.
type ServerConfig struct {
	Addr         string   `envconfig:"HTTP_ADDR" default:":8080"`
	MaxDimension int      `envconfig:"MAX_DIMENSION" default:"512"`
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Solver); err != nil {
		return nil, fmt.Errorf("config: failed to load solver settings: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Server); err != nil {
		return nil, fmt.Errorf("config: failed to load server settings: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Logging); err != nil {
		return nil, fmt.Errorf("config: failed to load log settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the solver or server cannot run with.
func (c *Config) Validate() error {
	t := c.Solver.Tolerance
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return fmt.Errorf("config: LINSOLVE_TOLERANCE must be finite and > 0, got %g", t)
	}
	if c.Server.MaxDimension < 0 {
		return fmt.Errorf("config: LINSOLVE_MAX_DIMENSION must be >= 0, got %d", c.Server.MaxDimension)
	}

	return nil
}
