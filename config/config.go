// Package config loads redlens configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultInstance is the Redlib instance used when no instance is
// configured.
const DefaultInstance = "https://redlib.catsarch.com"

// AuthConfig holds HTTP basic auth credentials for instances that
// require them.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config represents the structure of ~/.redlens/config.yaml.
type Config struct {
	Instance  string     `yaml:"instance"`
	Auth      AuthConfig `yaml:"auth"`
	RateLimit float64    `yaml:"rate_limit"`
	Database  string     `yaml:"database"`
	UserAgent string     `yaml:"user_agent"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Instance:  DefaultInstance,
		RateLimit: 1.0,
	}
}

// Load loads configuration from the given path, applies defaults for
// unset fields, and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Instance == "" {
		cfg.Instance = DefaultInstance
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 1.0
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadDefault loads configuration from ~/.redlens/config.yaml. A missing
// file is not an error; the defaults are returned instead.
func LoadDefault() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".redlens", "config.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		applyEnv(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("REDLENS_INSTANCE"); v != "" {
		cfg.Instance = v
	}
	if v := os.Getenv("REDLENS_DB"); v != "" {
		cfg.Database = v
	}
}
