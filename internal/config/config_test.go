package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all COMPASS_ env vars to test pure defaults
	envVars := []string{
		"COMPASS_PORT", "COMPASS_METRICS_PORT", "COMPASS_CATALOG_PATH",
		"COMPASS_SYNERGY_ENABLED", "COMPASS_RATE_LIMIT_RPM",
		"COMPASS_LOG_LEVEL", "COMPASS_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected embedded catalog by default, got path '%s'", cfg.Catalog.Path)
	}
	if !cfg.Scoring.SynergyEnabled {
		t.Error("expected synergy enabled by default")
	}
	if cfg.API.RateLimitRPM != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.API.RateLimitRPM)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COMPASS_PORT", "9100")
	t.Setenv("COMPASS_METRICS_PORT", "9101")
	t.Setenv("COMPASS_CATALOG_PATH", "/etc/compass/catalog.yaml")
	t.Setenv("COMPASS_SYNERGY_ENABLED", "false")
	t.Setenv("COMPASS_RATE_LIMIT_RPM", "30")
	t.Setenv("COMPASS_LOG_LEVEL", "debug")
	t.Setenv("COMPASS_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Catalog.Path != "/etc/compass/catalog.yaml" {
		t.Errorf("expected catalog path override, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Scoring.SynergyEnabled {
		t.Error("expected synergy disabled")
	}
	if cfg.API.RateLimitRPM != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.API.RateLimitRPM)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9200\nscoring:\n  synergy_enabled: false\nlogging:\n  level: warn\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COMPASS_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200 from file, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.SynergyEnabled {
		t.Error("expected synergy disabled via file")
	}
	// Env overrides the file.
	if cfg.Logging.Level != "error" {
		t.Errorf("expected log level 'error' from env, got '%s'", cfg.Logging.Level)
	}
	// Fields the file does not mention keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("COMPASS_PORT", "70000")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"colliding ports", func(c *Config) { c.Server.MetricsPort = c.Server.Port }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative rate limit", func(c *Config) { c.API.RateLimitRPM = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
