// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Session SessionConfig `yaml:"session"`
}

type SessionConfig struct {
	Source  SourceConfig   `yaml:"source"`
	Poll    PollConfig     `yaml:"poll"`
	Logs    LogFetchConfig `yaml:"logs"`
	Logging LoggingConfig  `yaml:"logging"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Host      string `yaml:"host" env:"WT_HOST"`
	Port      int    `yaml:"port" env:"WT_PORT"`
	TimeoutMs int    `yaml:"timeout_ms" env:"WT_TIMEOUT_MS"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms" env:"WT_POLL_INTERVAL_MS"`
}

// ---- MATCH LOG FETCH ----

type LogFetchConfig struct {
	Comments bool `yaml:"comments" env:"WT_FETCH_COMMENTS"`
	Events   bool `yaml:"events" env:"WT_FETCH_EVENTS"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level string `yaml:"level" env:"WT_LOG_LEVEL"`
}

// Load reads a YAML config file and applies the WT_* environment overlay.
// An empty path skips the file and starts from zero values; environment
// variables still apply.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	return &cfg, nil
}
