package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Credential backends understood by credstore.Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the TaskEase CLI.
type Config struct {
	APIBaseURL        string        `env:"TASKEASE_API_BASE_URL"`
	CredentialBackend string        `env:"TASKEASE_CREDENTIAL_BACKEND"`
	StorePath         string        `env:"TASKEASE_STORE_PATH"`
	RedisAddr         string        `env:"TASKEASE_REDIS_ADDR"`
	RequestTimeout    time.Duration `env:"TASKEASE_REQUEST_TIMEOUT"`
	LogLevel          string        `env:"TASKEASE_LOG_LEVEL"`
	LogFile           string        `env:"TASKEASE_LOG_FILE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.CredentialBackend = BackendSQLite
	c.StorePath = "taskease.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFile = ""
}

// Validate reports the first configuration value that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api base url %q: absolute http(s) url expected", c.APIBaseURL)
	}

	switch c.CredentialBackend {
	case BackendSQLite:
		if c.StorePath == "" {
			return errors.New("store path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("redis address is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown credential backend %q", c.CredentialBackend)
	}

	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseJson(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseEnv loads an optional .env file and overlays TASKEASE_* variables.
// Variables that are not set leave the current values untouched.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
