// Package config loads ringron settings from an optional YAML file and the
// environment. The environment wins over the file; flags win over both and
// are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full set of settings.
type Config struct {
	// DataDir is searched for method files when Methods is empty.
	DataDir string   `yaml:"data_dir" env:"RINGRON_DATA_DIR"`
	Methods []string `yaml:"methods"`

	Extent  ExtentConfig  `yaml:"extent"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtentConfig holds default build options.
type ExtentConfig struct {
	Cover   bool `yaml:"cover" env:"RINGRON_COVER"`
	Intros  int  `yaml:"intros" env:"RINGRON_INTROS"`
	Courses int  `yaml:"courses" env:"RINGRON_COURSES"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"RINGRON_LOG_LEVEL"`   // debug|info|warn|error
	Format string `yaml:"format" env:"RINGRON_LOG_FORMAT"` // json|console
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "methods",
		Extent: ExtentConfig{
			Intros:  1,
			Courses: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges the engine would otherwise reject late.
func (c *Config) Validate() error {
	if c.Extent.Intros < 0 {
		return fmt.Errorf("config: extent.intros must be >= 0, got %d", c.Extent.Intros)
	}
	if c.Extent.Courses < 1 {
		return fmt.Errorf("config: extent.courses must be >= 1, got %d", c.Extent.Courses)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
