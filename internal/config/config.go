// Package config provides configuration management for the page generator.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL     = errors.New("api.base_url is required")
	ErrMissingKeyEnv      = errors.New("api.key_env is required")
	ErrInvalidTimeout     = errors.New("api.timeout_sec must be at least 1")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrMissingStylesheet  = errors.New("output.stylesheet is required")
	ErrMissingPlaceholder = errors.New("page.placeholder must not be empty")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat   = errors.New("logging.format must be 'text' or 'json'")
	ErrMissingAPIKey      = errors.New("API key environment variable is not set")
)

// Config represents the complete generator configuration.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Output     OutputConfig     `yaml:"output"`
	Page       PageConfig       `yaml:"page"`
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
}

// APIConfig contains settings for the animal-data API.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	KeyEnv     string `yaml:"key_env"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// OutputConfig defines where and how the generated page is written.
type OutputConfig struct {
	Path         string `yaml:"path"`
	Stylesheet   string `yaml:"stylesheet"`
	CreateBackup bool   `yaml:"create_backup"`
}

// PageConfig defines page-level presentation settings.
type PageConfig struct {
	Title       string `yaml:"title"`
	Placeholder string `yaml:"placeholder"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValidationConfig gates the structural check of assembled documents.
type ValidationConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no YAML file is provided.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "https://api.api-ninjas.com/v1/animals",
			KeyEnv:     "API_NINJA_KEY",
			TimeoutSec: 10,
		},
		Output: OutputConfig{
			Path:       "animals.html",
			Stylesheet: "assets/styles.css",
		},
		Page: PageConfig{
			Title:       "My Animal Repository",
			Placeholder: "Unknown",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Validation: ValidationConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields left unset in the
// file fall back to their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.API.KeyEnv == "" {
		return ErrMissingKeyEnv
	}

	if c.API.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Output.Stylesheet == "" {
		return ErrMissingStylesheet
	}

	if c.Page.Placeholder == "" {
		return ErrMissingPlaceholder
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// ResolveAPIKey loads a .env file when one exists and reads the configured
// key variable from the environment.
func (c *APIConfig) ResolveAPIKey() (string, error) {
	// A missing .env file is fine; the variable may be set directly.
	_ = godotenv.Load()

	key := os.Getenv(c.KeyEnv)
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingAPIKey, c.KeyEnv)
	}

	return key, nil
}
