package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = 8080
	defaultPollInterval   = 10 * time.Second
	defaultDemoInterval   = 30 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	ScriptURL      string
	Port           int
	BearerToken    string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	DemoMode       bool
}

// Load reads configuration from environment variables (optionally .env).
// A missing GOOGLE_SCRIPT_URL is not an error here; requests report it.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:           defaultPort,
		RequestTimeout: defaultRequestTimeout,
	}

	cfg.ScriptURL = strings.TrimSpace(os.Getenv("GOOGLE_SCRIPT_URL"))

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	demo := strings.TrimSpace(os.Getenv("DEMO_MODE"))
	cfg.DemoMode = demo == "1" || strings.EqualFold(demo, "true")

	cfg.PollInterval = defaultPollInterval
	if cfg.DemoMode {
		cfg.PollInterval = defaultDemoInterval
	}
	if v := strings.TrimSpace(os.Getenv("POLL_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("invalid POLL_INTERVAL: %s must be positive", v)
		}
		cfg.PollInterval = d
	}

	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("invalid REQUEST_TIMEOUT: %s must be positive", v)
		}
		cfg.RequestTimeout = d
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
