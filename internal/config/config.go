// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"vendor-tco/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains calculation engine settings
	Engine EngineConfig `json:"engine"`

	// Catalog contains vendor catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains calculation engine settings
type EngineConfig struct {
	// Workers is the number of concurrent vendor calculations in a batch
	Workers int `json:"workers"`

	// DefaultRegion is the fallback region for unknown keys
	DefaultRegion string `json:"default_region"`

	// DefaultIndustry is the fallback industry for unknown keys
	DefaultIndustry string `json:"default_industry"`
}

// CatalogConfig contains vendor catalog settings
type CatalogConfig struct {
	// Paths lists HCL vendor catalog files or directories to load
	Paths []string `json:"paths,omitempty"`

	// UseBuiltin includes the built-in sample catalog
	UseBuiltin bool `json:"use_builtin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`

	// AllowedOrigins configures CORS
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Engine: EngineConfig{
			Workers:         4,
			DefaultRegion:   "north-america",
			DefaultIndustry: "technology",
		},
		Catalog: CatalogConfig{
			UseBuiltin: true,
		},
		Server: ServerConfig{
			Address:        ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise defaults
func LoadOrDefault(path string) *Config {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default()
		}
		path = filepath.Join(home, ".vendor-tco.json")
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

var current = Default()

// Set replaces the active configuration
func Set(cfg *Config) {
	current = cfg
}

// Get returns the active configuration
func Get() *Config {
	return current
}
