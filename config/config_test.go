package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "FETCH_TIMEOUT_SECONDS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "PAGESPEED_API_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8082" {
		t.Errorf("Port = %q, want 8082", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, want 30s", cfg.FetchTimeout)
	}
	if cfg.RateLimitRPS != 2 || cfg.RateLimitBurst != 5 {
		t.Errorf("rate limit = %v rps / %v burst, want 2/5", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.PageSpeedURL == "" {
		t.Error("PageSpeedURL default missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "10")
	t.Setenv("PAGESPEED_API_KEY", "psi-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.PageSpeedAPIKey != "psi-key" || cfg.OpenAIAPIKey != "oai-key" {
		t.Error("API keys not loaded from environment")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-a-port"},
		{"port out of range", "PORT", "70000"},
		{"timeout too large", "FETCH_TIMEOUT_SECONDS", "600"},
		{"zero rate", "RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnvAsInt_MalformedFallsBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, want the 30s default for a malformed value", cfg.FetchTimeout)
	}
}
