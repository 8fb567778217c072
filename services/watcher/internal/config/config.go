package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL     = "http://localhost:8080"
	defaultPollInterval   = 10 * time.Second
	defaultDemoInterval   = 30 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Source selects where the dashboard reads its series from.
type Source string

const (
	// SourceAPI reads the normalized series from the REST API service.
	SourceAPI Source = "api"
	// SourceDirect fetches and normalizes the sheet in-process.
	SourceDirect Source = "direct"
)

// Config holds runtime configuration for the terminal dashboard.
type Config struct {
	Source         Source
	APIBaseURL     string
	APIToken       string
	ScriptURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	DemoMode       bool
	LayoutPath     string
	LogPath        string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		Source:         SourceAPI,
		APIBaseURL:     defaultAPIBaseURL,
		RequestTimeout: defaultRequestTimeout,
	}

	if v := strings.TrimSpace(os.Getenv("DASHBOARD_SOURCE")); v != "" {
		switch Source(strings.ToLower(v)) {
		case SourceAPI:
			cfg.Source = SourceAPI
		case SourceDirect:
			cfg.Source = SourceDirect
		default:
			return cfg, fmt.Errorf("invalid DASHBOARD_SOURCE: %s", v)
		}
	}

	if v := strings.TrimSpace(os.Getenv("API_BASE_URL")); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	cfg.APIToken = strings.TrimSpace(os.Getenv("API_BEARER_TOKEN"))

	cfg.ScriptURL = strings.TrimSpace(os.Getenv("GOOGLE_SCRIPT_URL"))
	if cfg.Source == SourceDirect && cfg.ScriptURL == "" {
		return cfg, errors.New("GOOGLE_SCRIPT_URL is required when DASHBOARD_SOURCE=direct")
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

	cfg.LayoutPath = strings.TrimSpace(os.Getenv("DASHBOARD_LAYOUT"))
	cfg.LogPath = strings.TrimSpace(os.Getenv("DASHBOARD_LOG"))

	return cfg, nil
}
