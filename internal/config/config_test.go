package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.BaseURL == "" {
		t.Error("expected default base URL")
	}
	if cfg.Season != "2025/26" {
		t.Errorf("default season = %q", cfg.Season)
	}
	if cfg.FetchRetries != 0 {
		t.Errorf("default fetch retries = %d, expected 0", cfg.FetchRetries)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("default fetch timeout = %v", cfg.FetchTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LIGA_SEASON", "2026/27")
	t.Setenv("LIGA_FETCH_RETRIES", "3")
	t.Setenv("LIGA_FETCH_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Season != "2026/27" {
		t.Errorf("season override not applied: %q", cfg.Season)
	}
	if cfg.FetchRetries != 3 {
		t.Errorf("retries override not applied: %d", cfg.FetchRetries)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("timeout override not applied: %v", cfg.FetchTimeout)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LIGA_FETCH_RETRIES", "many")
	t.Setenv("LIGA_FETCH_TIMEOUT", "soon")

	cfg := Load()

	if cfg.FetchRetries != 0 {
		t.Errorf("malformed int should fall back, got %d", cfg.FetchRetries)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("malformed duration should fall back, got %v", cfg.FetchTimeout)
	}
}
