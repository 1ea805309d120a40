package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runchase settings read from the environment. Command-line
// flags take precedence over these values.
type Config struct {
	Seed       uint64 `env:"RUNCHASE_SEED"`
	RosterPath string `env:"RUNCHASE_ROSTER"`
	Trials     int    `env:"RUNCHASE_TRIALS" envDefault:"0"`
	Quiet      bool   `env:"RUNCHASE_QUIET" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func (c Config) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("trials must be >= 0, got %d", c.Trials)
	}
	return nil
}
