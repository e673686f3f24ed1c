package config

import (
	"fmt"

	"github.com/wizzomafizzo/t3commit/internal/convention"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default t3commit configuration
func DefaultConfig() *Config {
	return &Config{
		Releases: []string{convention.MainRelease},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
