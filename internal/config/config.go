package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	StaticMaxAge    int           `env:"STATIC_MAX_AGE" envDefault:"3600"`
}

// SiteConfig holds values the landing page needs that are not part of the copy itself.
type SiteConfig struct {
	Brand        string `env:"BRAND" envDefault:"Qubrius Labs"`
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"hello@qubriuslabs.com"`
	SecurityPath string `env:"SECURITY_PATH" envDefault:"/security"`
	HTMXSrc      string `env:"HTMX_SRC" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port     string `env:"PORT" envDefault:"8080"`
	Timezone string `env:"TZ_LOCATION" envDefault:"UTC"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Server   ServerConfig
	Site     SiteConfig `envPrefix:"SITE_"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TZ_LOCATION %q: %w", cfg.Timezone, err)
	}
	return &cfg, nil
}

// Location returns the time zone used for log timestamps. Load has already
// validated the name, so a failure here falls back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr is the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}
