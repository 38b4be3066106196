// Package config loads storefront settings from an optional YAML file and
// environment variables. Environment values win over the file; anything
// unparsable falls back to the default.
package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"strconv"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"

	// FileEnv names the YAML file to read before applying the environment.
	FileEnv = "STOREFRONT_CONFIG"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	APIBaseURL  string        `yaml:"api_base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	Storage StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Dir         string `yaml:"dir"`
	DatabaseURL string `yaml:"database_url"`
}

func Default() Config {
	return Config{
		AppEnv:      "dev",
		LogLevel:    "info",
		APIBaseURL:  "http://localhost:3000",
		HTTPTimeout: 10 * time.Second,
		Storage: StorageConfig{
			Driver: DriverFile,
			Dir:    ".luxe",
		},
	}
}

// Load reads the file named by STOREFRONT_CONFIG, if set, then applies
// environment overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.APIBaseURL = getEnv("API_BASE_URL", c.APIBaseURL)
	c.HTTPTimeout = getEnvDuration("HTTP_TIMEOUT", c.HTTPTimeout)
	c.Storage.Driver = getEnv("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Dir = getEnv("STORAGE_DIR", c.Storage.Dir)
	c.Storage.DatabaseURL = getEnv("DATABASE_URL", c.Storage.DatabaseURL)
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("config: storage dir is empty")
		}
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("config: database url is empty")
		}
	default:
		return fmt.Errorf("config: storage driver[%s] is not supported", c.Storage.Driver)
	}

	if c.APIBaseURL == "" {
		return fmt.Errorf("config: api base url is empty")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDuration accepts Go durations ("5s") or whole seconds ("5").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	if d, err := time.ParseDuration(v); err == nil {
		return d
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}

	return time.Duration(n) * time.Second
}
