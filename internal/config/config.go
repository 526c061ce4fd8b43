// Package config loads the portbridge configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the proxy.
type Config struct {
	Listen  ListenConfig  `yaml:"listen"`
	Remote  RemoteConfig  `yaml:"remote"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListenConfig describes the local endpoint the proxy binds.
type ListenConfig struct {
	Port uint16 `yaml:"port"`
}

// RemoteConfig describes the upstream endpoint every connection is bridged to.
type RemoteConfig struct {
	Host string `yaml:"host"`
	Port uint16 `yaml:"port"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with built-in defaults applied.
func Default() *Config {
	return &Config{
		Listen:  ListenConfig{Port: 8080},
		Remote:  RemoteConfig{Host: "127.0.0.1", Port: 80},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and parses the YAML configuration at path. Fields absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
