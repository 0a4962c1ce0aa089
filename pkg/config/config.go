// Package config loads the CLI configuration: a YAML file with environment
// overrides. The API client itself takes its credential as a constructor
// parameter; this package is the glue that sources it for cmd/t212.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/equitybot/t212go/pkg/logger"
)

const (
	// EnvAPIKey overrides api_key from the file.
	EnvAPIKey = "TRADING212_API_KEY"
	// EnvHost overrides host from the file.
	EnvHost = "TRADING212_HOST"
)

// Log mirrors logger.Config with yaml tags.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Config is everything cmd/t212 needs to construct a client.
type Config struct {
	APIKey string `yaml:"api_key"`
	Host   string `yaml:"host"`
	Log    Log    `yaml:"log"`
}

// LoggerConfig converts the yaml section for logger.Init.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		OutputFile: c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}

// Load reads path (optional; pass "" for environment-only configuration)
// and applies environment overrides on top. A missing api_key is not an
// error here: api.NewClient reports it as a ConfigError.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}

	return cfg, nil
}
