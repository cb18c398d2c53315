package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the dashboard's startup configuration. Every field has a
// default so the binary runs with no config file at all.
type Config struct {
	// PlayerName labels the local character
	PlayerName string `yaml:"player_name"`
	// OrgID selects which stored organization to mount; empty picks the
	// first one, seeding the demo floor on an empty database
	OrgID string `yaml:"org_id"`

	DBPath     string `yaml:"db_path"`
	SessionDir string `yaml:"session_dir"`
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`

	// StreamAddr serves the websocket observer stream when non-empty
	StreamAddr string `yaml:"stream_addr"`
	// MetricsAddr serves Prometheus metrics when non-empty
	MetricsAddr string `yaml:"metrics_addr"`

	Muted bool `yaml:"muted"`
}

// Load reads a config file, applying defaults for absent fields. An empty
// path returns pure defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		PlayerName: "You",
		DBPath:     "agentfloor.db",
		SessionDir: "sessions",
		LogPath:    "agentfloor.log",
		LogLevel:   "info",
	}
}

// Validate rejects values the rest of the program cannot tolerate
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	return nil
}
