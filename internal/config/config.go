package config

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/bytes"
	"golang.org/x/text/language"
)

// Config holds all configuration for the preview server and the CLI.
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`
	// OptionsFile is a JSON file of avatars and profiles; empty means the built-in ones.
	OptionsFile string `envconfig:"OPTIONS_FILE"`
	Locale      string `envconfig:"LOCALE" default:"en-US"`
	// StylesheetURL is linked from every page so the discord-* classes are styled.
	StylesheetURL string `envconfig:"STYLESHEET_URL"`
	// MaxBody caps render request bodies, in echo's BodyLimit syntax ("1M", "512KiB").
	MaxBody string `envconfig:"MAX_BODY" default:"1M"`
	// RateLimit is the number of render requests per second allowed per client.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"10"`
}

// New loads a .env file if present and reads MOCKCORD_* variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return Load()
}

// Load reads the configuration from the environment only.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mockcord", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if _, err := cfg.Language(); err != nil {
		return nil, err
	}
	if _, err := cfg.MaxBodyBytes(); err != nil {
		return nil, err
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("MOCKCORD_RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}
	return &cfg, nil
}

// Language parses the configured locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid MOCKCORD_LOCALE %q: %w", c.Locale, err)
	}
	return tag, nil
}

// MaxBodyBytes parses MaxBody the way echo's BodyLimit middleware does.
func (c *Config) MaxBodyBytes() (int64, error) {
	n, err := bytes.Parse(c.MaxBody)
	if err != nil {
		return 0, fmt.Errorf("invalid MOCKCORD_MAX_BODY %q: %w", c.MaxBody, err)
	}
	if n <= 0 || n == math.MaxInt64 {
		return 0, fmt.Errorf("MOCKCORD_MAX_BODY out of range: %q", c.MaxBody)
	}
	return n, nil
}
