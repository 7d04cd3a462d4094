package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const (
	defaultPort           = "10000"
	defaultRequestTimeout = 10 * time.Second
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey  string
	Port           string
	StaticDir      string
	AllowedOrigins []string
	RequestTimeout time.Duration
	GinMode        string
	Logging        LoggingConfig
}

type LoggingConfig struct {
	Level string
	File  string
}

// Load loads the configuration from environment variables.
// A missing API key is not fatal here; see Validate.
func Load() (*Config, error) {
	timeout := defaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", d)
		}
		timeout = d
	}

	return &Config{
		YouTubeAPIKey:  strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		Port:           getEnv("PORT", defaultPort),
		StaticDir:      getEnv("STATIC_DIR", "web"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		RequestTimeout: timeout,
		GinMode:        os.Getenv("GIN_MODE"),
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
