package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_SCRIPT_URL", "PORT", "API_PORT", "API_BEARER_TOKEN",
		"POLL_INTERVAL", "REQUEST_TIMEOUT", "DEMO_MODE",
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

	if cfg.ScriptURL != "" {
		t.Errorf("ScriptURL = %q, want empty", cfg.ScriptURL)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Errorf("ListenAddr() = %q, want :8080", cfg.ListenAddr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_SCRIPT_URL", "  https://script.google.com/macros/s/abc/exec  ")
	t.Setenv("API_PORT", "9090")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("API_BEARER_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ScriptURL != "https://script.google.com/macros/s/abc/exec" {
		t.Errorf("ScriptURL = %q", cfg.ScriptURL)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.BearerToken != "secret" {
		t.Errorf("BearerToken = %q, want secret", cfg.BearerToken)
	}
}

func TestLoad_DemoMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEMO_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval)
	}

	t.Setenv("POLL_INTERVAL", "15s")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PollInterval != 15*time.Second {
		t.Errorf("PollInterval = %v, want explicit 15s", cfg.PollInterval)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "abc"},
		{"PORT", "-1"},
		{"API_PORT", "zero"},
		{"POLL_INTERVAL", "ten"},
		{"POLL_INTERVAL", "0s"},
		{"REQUEST_TIMEOUT", "-2s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}
