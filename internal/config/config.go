// Package config provides configuration for the storefront server.
//
// Settings come from an optional YAML file layered under environment
// variables: the file (if found) is read first, then env vars override it,
// then defaults fill the remaining gaps. The environment surface matches the
// original deployment contract:
//
//	HTTP_ADDR  listen address (default :3000)
//	LOG_LEVEL  zerolog level name (default info)
//	USE_SQLITE "true" selects the persistent SQLite backend
//	DB_PATH    SQLite file path (default ./data/app.db)
//	TEST_MODE  "true" forces the ephemeral in-memory SQLite backend
package config

import (
	"fmt"
	"os"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Backend identifies a repository backend family.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
	BackendTest   Backend = "test"
)

// Config holds all server settings.
type Config struct {
	Addr     string         `yaml:"addr" env:"HTTP_ADDR"`
	LogLevel string         `yaml:"log_level" env:"LOG_LEVEL"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig selects and locates the storage backend.
type DatabaseConfig struct {
	Path      string `yaml:"path" env:"DB_PATH"`
	UseSQLite bool   `yaml:"use_sqlite" env:"USE_SQLITE"`
	TestMode  bool   `yaml:"-" env:"TEST_MODE"`
}

// Load finds and loads the config file (or starts from defaults), then
// applies environment overrides. The returned path is the config file used,
// empty when running on defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, path, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, path, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	return cfg, path, nil
}

// DefaultConfig returns the settings used when no file or env overrides
// exist.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/app.db"
	}
}

// Backend resolves the backend family for this process. Test mode wins over
// the SQLite flag so test runs can never touch a persistent database.
func (c *Config) Backend() Backend {
	if c.Database.TestMode {
		return BackendTest
	}
	if c.Database.UseSQLite {
		return BackendSQLite
	}
	return BackendMemory
}
