package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DASHBOARD_SOURCE", "API_BASE_URL", "API_BEARER_TOKEN", "GOOGLE_SCRIPT_URL",
		"POLL_INTERVAL", "REQUEST_TIMEOUT", "DEMO_MODE", "DASHBOARD_LAYOUT", "DASHBOARD_LOG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != SourceAPI {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceAPI)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.PollInterval)
	}
}

func TestLoad_Direct(t *testing.T) {
	clearEnv(t)
	t.Setenv("DASHBOARD_SOURCE", "Direct")

	if _, err := Load(); err == nil {
		t.Error("direct source without GOOGLE_SCRIPT_URL should fail")
	}

	t.Setenv("GOOGLE_SCRIPT_URL", "https://script.example.com/exec")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != SourceDirect {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceDirect)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://api.internal:9000/")
	t.Setenv("DEMO_MODE", "1")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("DASHBOARD_LAYOUT", "layout.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBaseURL != "http://api.internal:9000" {
		t.Errorf("APIBaseURL = %q, want trailing slash trimmed", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s demo cadence", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
	if cfg.LayoutPath != "layout.yaml" {
		t.Errorf("LayoutPath = %q", cfg.LayoutPath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"DASHBOARD_SOURCE": "kafka",
		"POLL_INTERVAL":    "soon",
		"REQUEST_TIMEOUT":  "0",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", key, value)
			}
		})
	}
}
