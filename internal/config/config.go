package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is the prefix every variable carries, e.g. STOREFRONT_BASE_URL.
const EnvPrefix = "STOREFRONT"

// SessionInMemory as SESSION_DB keeps the session out of disk entirely.
const SessionInMemory = "memory"

// Config holds the storefront client configuration.
// Environment variables are automatically parsed from STOREFRONT_ prefix
type Config struct {
	BaseURL        string        `envconfig:"BASE_URL" default:"http://127.0.0.1:5000/api"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"50s"`
	Debug          bool          `envconfig:"DEBUG" default:"false"`

	// Session persistence: a SQLite file path, "memory", or empty for the
	// per-user default location.
	SessionDB string `envconfig:"SESSION_DB" default:""`

	// Optional bearer token for deployments behind a token gateway.
	AuthToken string `envconfig:"AUTH_TOKEN" default:""`

	// Retries for read-only CLI commands on recoverable errors.
	Retries uint64 `envconfig:"RETRIES" default:"2"`
}

// ResolveDefaults validates the values and fills in the session path.
func (c *Config) ResolveDefaults() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid BASE_URL: %q", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0, got %s", c.RequestTimeout)
	}
	if c.SessionDB == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve session path: %w", err)
		}
		c.SessionDB = filepath.Join(dir, "storefront", "session.db")
	}
	return nil
}

// New loads an optional .env file from the working directory, then parses
// environment variables prefixed with STOREFRONT_.
// Example: STOREFRONT_BASE_URL, STOREFRONT_REQUEST_TIMEOUT=30s
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("request_timeout", cfg.RequestTimeout).
		Bool("debug", cfg.Debug).
		Str("session_db", cfg.SessionDB).
		Bool("auth_token_present", cfg.AuthToken != "").
		Uint64("retries", cfg.Retries).
		Msg("configuration loaded")

	return &cfg, nil
}
