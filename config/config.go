package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the service settings read from the environment
type Config struct {
	Port    string `envconfig:"PORT" default:"8082"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
	DevMode bool   `envconfig:"DEV_MODE" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"5"`

	UserAgent  string `envconfig:"FETCH_USER_AGENT" default:"SEOAnalyzer/1.0"`
	ChartTitle string `envconfig:"CHART_TITLE" default:"Analysis Summary"`
}

// envFiles are tried in order; the first one found wins
var envFiles = []string{".env.development", ".env"}

// Load reads an optional .env file and then processes environment variables
func Load() (*Config, string, error) {
	loaded := ""
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", f, err)
		}
		loaded = f
		break
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, loaded, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, loaded, err
	}
	return &cfg, loaded, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}
