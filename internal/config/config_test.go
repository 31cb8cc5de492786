package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.LandingDelay != 2*time.Second {
		t.Errorf("expected 2s landing delay, got %v", cfg.LandingDelay)
	}
	if !cfg.Metrics {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garderoba.yaml")
	err := os.WriteFile(path, []byte(`
addr: ":9090"
store: "bolt:/tmp/wardrobe.db"
landing_delay: 500ms
log_format: json
metrics: false
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("GARDEROBA_ADDR", ":7070")
	t.Setenv("GARDEROBA_SESSION_TTL", "1h")
	t.Setenv("GARDEROBA_SUBMIT_BURST", "12")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("expected env to override file addr, got %q", cfg.Addr)
	}
	if cfg.Store != "bolt:/tmp/wardrobe.db" {
		t.Errorf("unexpected store %q", cfg.Store)
	}
	if cfg.LandingDelay != 500*time.Millisecond {
		t.Errorf("unexpected landing delay %v", cfg.LandingDelay)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.SessionTTL)
	}
	if cfg.SubmitBurst != 12 {
		t.Errorf("expected env submit burst 12, got %d", cfg.SubmitBurst)
	}
	if cfg.LogFormat != "json" || cfg.Metrics {
		t.Errorf("unexpected log format %q / metrics %v", cfg.LogFormat, cfg.Metrics)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("GARDEROBA_LANDING_DELAY", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestLoadInvalidSubmitBurst(t *testing.T) {
	t.Setenv("GARDEROBA_SUBMIT_BURST", "many")
	if _, err := Load(""); err == nil {
		t.Error("expected error for invalid submit burst")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty store", func(c *Config) { c.Store = "" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"negative delay", func(c *Config) { c.LandingDelay = -time.Second }},
		{"zero rate", func(c *Config) { c.SubmitRate = 0 }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
