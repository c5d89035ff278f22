// Package config loads and saves the smokifit YAML configuration from
// the user's config directory ($SMOKIFIT_HOME or ~/.smokifit).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Page size and goal limits.
const (
	MinPageSize      = 1
	MaxPageSize      = 3
	DefaultPageSize  = 1
	DefaultDailyGoal = 2000
)

const (
	configFileName   = "config.yaml"
	databaseFileName = "smokifit.db"
	envHome          = "SMOKIFIT_HOME"
)

// Validation errors.
var (
	ErrInvalidPageSize  = errors.New("page_size must be between 1 and 3")
	ErrInvalidDailyGoal = errors.New("daily_goal must be greater than 0")
)

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	// Level is a zerolog level name; unknown values fall back to info.
	Level string `yaml:"level,omitempty"`
	// Format is "console" (default) or "json".
	Format string `yaml:"format,omitempty"`
	// File, when set, receives a copy of the log stream.
	File string `yaml:"file,omitempty"`
}

// Config is the persisted user configuration. Page-size changes take
// effect the next time a browse session starts.
type Config struct {
	// APIKey authenticates against api-ninjas.
	APIKey string `yaml:"api_key,omitempty"`
	// PageSize is the number of records shown per page (1-3).
	PageSize int `yaml:"page_size"`
	// DailyGoal seeds the calorie ledger on first run; afterwards the
	// ledger's own goal wins.
	DailyGoal int `yaml:"daily_goal"`
	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging,omitempty"`

	path string
}

// New returns the configuration: defaults overlaid with whatever the
// config file contains. A missing or unreadable file silently yields
// the defaults; first-run users have no file yet.
func New() *Config {
	cfg := &Config{
		PageSize:  DefaultPageSize,
		DailyGoal: DefaultDailyGoal,
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}

	dir, err := Dir()
	if err != nil {
		return cfg
	}
	cfg.path = filepath.Join(dir, configFileName)

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

// Validate checks the configured values are usable.
func (c *Config) Validate() error {
	if c.PageSize < MinPageSize || c.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	if c.DailyGoal <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDailyGoal, c.DailyGoal)
	}
	return nil
}

// Save writes the configuration to its file, creating the config
// directory if needed.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}
	if c.path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, configFileName)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (c *Config) Path() string { return c.path }

// DatabasePath returns the SQLite database location inside the config
// directory.
func DatabasePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseFileName), nil
}

// Dir returns the smokifit configuration directory: $SMOKIFIT_HOME if
// set, otherwise ~/.smokifit.
func Dir() (string, error) {
	if home := os.Getenv(envHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".smokifit"), nil
}

// EnsureDir creates the configuration directory if it does not exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
