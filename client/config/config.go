// Package config loads the client settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL      = "http://localhost:4000"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultSessionFile = "session.json"
)

type Config struct {
	APIURL      string
	HTTPTimeout time.Duration
	SessionFile string
	Debug       bool
}

// Load reads BILLED_* variables. An explicit envPath must exist; the default
// .env is optional.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	timeout, err := parseDurationEnv("BILLED_HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid BILLED_HTTP_TIMEOUT: %w", err)
	}

	debug, err := parseBoolEnv("BILLED_DEBUG", false)
	if err != nil {
		return nil, fmt.Errorf("invalid BILLED_DEBUG: %w", err)
	}

	return &Config{
		APIURL:      getEnvOrDefault("BILLED_API_URL", DefaultAPIURL),
		HTTPTimeout: timeout,
		SessionFile: getEnvOrDefault("BILLED_SESSION_FILE", DefaultSessionFile),
		Debug:       debug,
	}, nil
}

// Validate checks that the API URL is an absolute http(s) URL and that the
// timeout is positive.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BILLED_API_URL must be an absolute http(s) URL, got %q", c.APIURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("BILLED_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.SessionFile == "" {
		return fmt.Errorf("BILLED_SESSION_FILE is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}
