package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Timezone string   `env:"TIMEZONE" envDefault:"Local"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Tracing  Tracing  `envPrefix:"TRACING_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"file:database.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"`
}

// Session contains login session parameters.
type Session struct {
	Secret       string        `env:"SECRET" envDefault:"devsecret"`
	TTL          time.Duration `env:"TTL" envDefault:"24h"`
	Backend      string        `env:"BACKEND" envDefault:"sql"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"session"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

// Redis contains parameters of the optional redis session backend.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Tracing contains OpenTelemetry exporter parameters.
type Tracing struct {
	Exporter    string `env:"EXPORTER" envDefault:"none"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"sales-tracker"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	switch cfg.Session.Backend {
	case "sql", "redis":
	default:
		return nil, fmt.Errorf("unsupported session backend %q", cfg.Session.Backend)
	}

	return &cfg, nil
}

// Location resolves the configured timezone used to decide what "today" is.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
