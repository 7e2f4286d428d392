// pkg/config/config_test.go
package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MaxUploadBytes != 200*1024*1024 {
		t.Errorf("MaxUploadBytes = %d, want 200MB", cfg.MaxUploadBytes)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.Score.UnitMismatchPenalty != 40 || cfg.Score.UnitMissingPenalty != 20 {
		t.Errorf("penalties = %d/%d, want 40/20",
			cfg.Score.UnitMismatchPenalty, cfg.Score.UnitMissingPenalty)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UNIT_MISMATCH_PENALTY", "50")
	t.Setenv("ACCEPT_THRESHOLD", "60")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Score.UnitMismatchPenalty != 50 {
		t.Errorf("UnitMismatchPenalty = %d, want 50", cfg.Score.UnitMismatchPenalty)
	}
	if cfg.Score.AcceptThreshold != 60 {
		t.Errorf("AcceptThreshold = %d, want 60", cfg.Score.AcceptThreshold)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console", cfg.LogFormat)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "70000")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error for an out-of-range port")
	}
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	cfg := &Config{LogLevel: "info", LogFormat: "xml"}
	if _, err := NewLogger(cfg); err == nil {
		t.Error("expected an error for an unknown log format")
	}
}
