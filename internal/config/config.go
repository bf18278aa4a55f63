// Package config loads server and CLI settings from a YAML file with
// LIFECUBES_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// ErrMissingSecret is returned by Validate when no JWT secret is configured.
var ErrMissingSecret = errors.New("jwt secret not configured (set auth.jwt_secret or LIFECUBES_JWT_SECRET)")

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Grid     GridConfig     `yaml:"grid"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address         string   `yaml:"address"`
	StaticDir       string   `yaml:"static_dir"`
	AllowedOrigins  []string `yaml:"allowed_origins,omitempty"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path          string `yaml:"path"`
	// PurgeInterval is how often expired revoked tokens are deleted.
	PurgeInterval string `yaml:"purge_interval"`
}

// AuthConfig configures tokens and password hashing.
type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
	BcryptCost      int    `yaml:"bcrypt_cost"`
}

// GridConfig configures the life grid.
type GridConfig struct {
	HorizonYears int `yaml:"horizon_years"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration usable without a file, except for
// the JWT secret.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8080",
			StaticDir:       "./frontend/static",
			ShutdownTimeout: "10s",
		},
		Database: DatabaseConfig{
			Path:          "./data/lifecubes.db",
			PurgeInterval: "1h",
		},
		Auth: AuthConfig{
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "168h",
		},
		Grid: GridConfig{
			HorizonYears: weekgrid.DefaultHorizonYears,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides(getenv func(string) string) error {
	strs := map[string]*string{
		"LIFECUBES_ADDR":              &c.Server.Address,
		"LIFECUBES_STATIC_DIR":        &c.Server.StaticDir,
		"LIFECUBES_DB_PATH":           &c.Database.Path,
		"LIFECUBES_JWT_SECRET":        &c.Auth.JWTSecret,
		"LIFECUBES_ACCESS_TOKEN_TTL":  &c.Auth.AccessTokenTTL,
		"LIFECUBES_REFRESH_TOKEN_TTL": &c.Auth.RefreshTokenTTL,
		"LIFECUBES_LOG_LEVEL":         &c.Log.Level,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv("LIFECUBES_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := getenv("LIFECUBES_HORIZON_YEARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LIFECUBES_HORIZON_YEARS %q: %w", v, err)
		}
		c.Grid.HorizonYears = n
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the settings needed to serve.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.Grid.HorizonYears <= 0 || c.Grid.HorizonYears > weekgrid.DefaultHorizonYears {
		return fmt.Errorf("horizon_years must be in 1..%d, got %d", weekgrid.DefaultHorizonYears, c.Grid.HorizonYears)
	}
	for name, value := range map[string]string{
		"access_token_ttl":  c.Auth.AccessTokenTTL,
		"refresh_token_ttl": c.Auth.RefreshTokenTTL,
		"purge_interval":    c.Database.PurgeInterval,
		"shutdown_timeout":  c.Server.ShutdownTimeout,
	} {
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return fmt.Errorf("invalid %s %q", name, value)
		}
	}
	return nil
}

// AccessTokenTTL returns the access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return durationOr(c.Auth.AccessTokenTTL, time.Hour)
}

// RefreshTokenTTL returns the refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	return durationOr(c.Auth.RefreshTokenTTL, 7*24*time.Hour)
}

// PurgeInterval returns the revoked-token purge period.
func (c *Config) PurgeInterval() time.Duration {
	return durationOr(c.Database.PurgeInterval, time.Hour)
}

// ShutdownTimeout returns the graceful shutdown limit.
func (c *Config) ShutdownTimeout() time.Duration {
	return durationOr(c.Server.ShutdownTimeout, 10*time.Second)
}

func durationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
