// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"skillsite"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"skillsite"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// Startup connection retries for Postgres and Valkey. Zero keeps the
	// retry package defaults.
	ConnectAttempts uint          `env:"CONNECT_ATTEMPTS" envDefault:"5"`
	ConnectDelay    time.Duration `env:"CONNECT_DELAY" envDefault:"1s"`

	// Generative-text provider. The key is a secret and has no default.
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`

	// Hosted form-processing endpoint for the contact form
	FormEndpoint string        `env:"FORM_ENDPOINT"`
	FormTimeout  time.Duration `env:"FORM_TIMEOUT" envDefault:"15s"`

	CarouselPeriod     time.Duration `env:"CAROUSEL_PERIOD" envDefault:"3s"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	CatalogCacheTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	Contact ContactConfig `envPrefix:"CONTACT_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

// ContactConfig is the trainer's public contact block.
type ContactConfig struct {
	Name     string `env:"NAME" envDefault:"Neeraj Kumar"`
	Email    string `env:"EMAIL" envDefault:"hello@example.com"`
	Phone    string `env:"PHONE"`
	Address  string `env:"ADDRESS" envDefault:"Provident Wellworth City Dodhballapur Main Road Bangalore:561-203"`
	LinkedIn string `env:"LINKEDIN" envDefault:"https://linkedin.com/in/neeraj-kumarcertifiedinternationalcorporatetrainer"`
	YouTube  string `env:"YOUTUBE" envDefault:"https://www.youtube.com/@SuccessMantrasByNeerajkumar/featured"`
}

// LogConfig controls log level and optional file rotation.
type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"30"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}
	return parse(env.Options{})
}

// LoadFrom builds a Config from an explicit variable set instead of the
// process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var problems []string

	if c.Env == "production" {
		if c.DBPassword == "changeme" {
			problems = append(problems, "POSTGRES_PASSWORD must be set in production")
		}
		if c.FormEndpoint == "" {
			problems = append(problems, "FORM_ENDPOINT must be set in production")
		}
	}
	if c.RateLimitPerMinute < 1 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute))
	}
	if c.CarouselPeriod <= 0 {
		problems = append(problems, "CAROUSEL_PERIOD must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AIEnabled reports whether a generative-text credential is configured.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}
