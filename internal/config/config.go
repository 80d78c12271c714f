// Package config loads housesplit settings.
//
// Sources, lowest priority first: DefaultConfig, an optional TOML file,
// a .env file in the working directory, then environment variables.
//
// Environment variables:
//
//	HOUSESPLIT_CONFIG: path to a TOML config file
//	HOST, PORT: HTTP listen address (default 0.0.0.0:8080)
//	DB_DRIVER: sqlite or postgres (default sqlite)
//	DB_PATH: SQLite database file (default ./data/housesplit.db)
//	DATABASE_URL: PostgreSQL connection string
//	LOG_LEVEL: debug, info, warn, error (default info)
//	LOG_FORMAT: text or json (default text)
//	METRICS_ENABLED: serve /metrics (default true)
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `toml:"http"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

type HTTPConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type DatabaseConfig struct {
	Driver string `toml:"driver"`
	// Path is the SQLite database file.
	Path string `toml:"path"`
	// DSN is the PostgreSQL connection string.
	DSN string `toml:"dsn"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "./data/housesplit.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load builds the configuration from all sources. path names a TOML file;
// when empty, HOUSESPLIT_CONFIG is consulted and a missing variable means
// no file.
func Load(path string) (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("HOUSESPLIT_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	c.HTTP.Host = getEnv("HOST", c.HTTP.Host)
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid PORT '%s': must be a number", v))
		} else {
			c.HTTP.Port = port
		}
	}

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Path = getEnv("DB_PATH", c.Database.Path)
	c.Database.DSN = getEnv("DATABASE_URL", c.Database.DSN)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid METRICS_ENABLED '%s': must be a boolean", v))
		} else {
			c.Metrics.Enabled = enabled
		}
	}

	return errors.Join(errs...)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.HTTP.Port))
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			problems = append(problems, "SQLite database path cannot be empty when using sqlite driver")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			problems = append(problems, "DATABASE_URL is required when using postgres driver")
		} else if u, err := url.Parse(c.Database.DSN); err != nil {
			problems = append(problems, fmt.Sprintf("invalid DATABASE_URL: %v", err))
		} else if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			problems = append(problems, fmt.Sprintf("invalid DATABASE_URL scheme '%s': must be 'postgres' or 'postgresql'", u.Scheme))
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of [%s %s]", c.Database.Driver, DriverSQLite, DriverPostgres))
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of %v", c.Log.Level, validLevels))
	}
	validFormats := []string{"text", "json"}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", c.Log.Format, validFormats))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
