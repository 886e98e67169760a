package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	User    UserConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// UserConfig holds the ambient user context configuration.
type UserConfig struct {
	// Handle is the OS user the process acts for when no explicit handle
	// is supplied. The privileged wrapper sets this at launch.
	Handle int `envconfig:"AM_USER_HANDLE" default:"0"`
	// Required enables strict mode: user-agnostic path lookups are flagged
	// in the diagnostic log.
	Required bool `envconfig:"AM_USER_REQUIRED" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		User: UserConfig{
			Handle:   0,
			Required: false,
		},
	}
}
