package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Expected default api_url %q, got %q", DefaultAPIURL, cfg.APIURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log_level 'info', got %q", cfg.LogLevel)
	}
	if cfg.Voice.RecordCommand == "" {
		t.Error("Expected a default record command")
	}
	if cfg.Voice.PlayCommand == "" {
		t.Error("Expected a default play command")
	}
}

func TestApplyDefaultsFillsBlankedFields(t *testing.T) {
	cfg := &AppConfig{}
	applyDefaults(cfg)

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Expected api_url %q after applyDefaults, got %q", DefaultAPIURL, cfg.APIURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log_level 'info' after applyDefaults, got %q", cfg.LogLevel)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &AppConfig{
		APIURL:   "https://api.example.com",
		LogLevel: "debug",
	}
	applyDefaults(cfg)

	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("applyDefaults overwrote api_url: %q", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("applyDefaults overwrote log_level: %q", cfg.LogLevel)
	}
}

func TestEnvOverrideBeatsFile(t *testing.T) {
	t.Setenv("FINMIND_API_URL", "https://override.example.com")

	cfg := &AppConfig{APIURL: "https://file.example.com"}
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("env.Parse failed: %v", err)
	}

	if cfg.APIURL != "https://override.example.com" {
		t.Errorf("Expected env override to win, got %q", cfg.APIURL)
	}
}
