// Package config loads settings from an optional YAML file with
// environment variables taking precedence, so deployments can override a
// checked-in config.yaml through the process environment.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string `yaml:"port"`
	MongoURI string `yaml:"mongo_uri"`
	Database string `yaml:"database"`
}

// Load reads path when it exists, then applies env overrides and
// defaults. MONGO_URI is the only setting without a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database = v
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Database == "" {
		cfg.Database = "sample_ecommerce"
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is missing in env")
	}
	return cfg, nil
}
