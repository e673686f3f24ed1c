package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/t3commit/internal/convention"
	"github.com/wizzomafizzo/t3commit/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds per-project defaults for the t3commit commands.
type Config struct {
	Releases []string      `yaml:"releases,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Strict   bool          `yaml:"strict,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Load reads the config file at path. A missing file yields DefaultConfig.
func Load(afs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(afs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML parses config from YAML bytes, filling unset fields with defaults
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks release names and the log level
func (c *Config) Validate() error {
	conv := convention.Default()
	for i, release := range c.Releases {
		if !conv.ValidRelease(release) {
			return fmt.Errorf("release %d: invalid release format '%s': use '%s' or version like '13.4'",
				i+1, release, convention.MainRelease)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	return nil
}

// ReleasesFlag renders the configured releases as a --releases flag value.
func (c *Config) ReleasesFlag() string {
	return strings.Join(c.Releases, ", ")
}
