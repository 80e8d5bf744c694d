package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the hosctl CLI. The server reads its
// settings from the environment instead; the CLI favors a file so runs
// are reproducible.
type Config struct {
	ORSAPIKey        string `yaml:"ors_api_key,omitempty"`
	DBPath           string `yaml:"db_path,omitempty"`
	DefaultStartTime string `yaml:"default_start_time,omitempty"`
}

// Load reads the config file. A missing file yields an empty config so
// flag and environment fallbacks apply.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory).
func DefaultConfigPath() string {
	return "config.yaml"
}

func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return "data/app.db"
}

func (c *Config) GetDefaultStartTime() string {
	if c.DefaultStartTime != "" {
		return c.DefaultStartTime
	}
	return "08:00"
}
