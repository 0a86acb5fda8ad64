package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete flowsim configuration
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Owner    string         `json:"owner" yaml:"owner"`
	Window   WindowConfig   `json:"window" yaml:"window"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// DatabaseConfig locates the ledger store
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// WindowConfig is the default projection window, RFC 3339 timestamps.
// Either may be overridden per invocation.
type WindowConfig struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

// LogConfig controls zerolog output
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// Range parses the window bounds. Both must be set to call it.
func (w WindowConfig) Range() (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window.start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window.end: %w", err)
	}
	return start, end, nil
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. The core engine does not
// reject an inverted window, so the strict start < end check lives here.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Owner == "" {
		return fmt.Errorf("owner is required")
	}
	if (c.Window.Start == "") != (c.Window.End == "") {
		return fmt.Errorf("window.start and window.end must be set together")
	}
	if c.Window.Start != "" {
		start, end, err := c.Window.Range()
		if err != nil {
			return err
		}
		if !start.Before(end) {
			return fmt.Errorf("window.start must be before window.end")
		}
	}
	switch c.Log.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level: %s", c.Log.Level)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "./flowsim.db",
		},
		Owner: "demo",
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
