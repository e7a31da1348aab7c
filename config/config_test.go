package config

import (
	"testing"
	"time"
)

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://backend.example.com")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com, http://localhost:3000")
	t.Setenv("SESSION_IDLE_TIMEOUT", "10m")
	t.Setenv("SESSION_SWEEP_INTERVAL", "1m")
	t.Setenv("MAX_UPLOAD_MB", "4")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected PORT override, got %s", cfg.Port)
	}
	if cfg.APIBaseURL != "https://backend.example.com" {
		t.Fatalf("expected API_BASE_URL override, got %s", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("expected API_TIMEOUT 3s, got %s", cfg.APITimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:3000" {
		t.Fatalf("expected two CORS origins, got %v", cfg.CORSOrigins)
	}
	if cfg.SessionIdleTimeout != 10*time.Minute {
		t.Fatalf("expected SESSION_IDLE_TIMEOUT 10m, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.SessionSweepInterval != time.Minute {
		t.Fatalf("expected SESSION_SWEEP_INTERVAL 1m, got %s", cfg.SessionSweepInterval)
	}
	if cfg.MaxUploadBytes != 4<<20 {
		t.Fatalf("expected MAX_UPLOAD_MB 4, got %d bytes", cfg.MaxUploadBytes)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ORIGINS", " , ")
	t.Setenv("MAX_UPLOAD_MB", "lots")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("expected default API timeout, got %s", cfg.APITimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("expected default CORS origin, got %v", cfg.CORSOrigins)
	}
	if cfg.MaxUploadBytes != 32<<20 {
		t.Fatalf("expected default upload limit, got %d", cfg.MaxUploadBytes)
	}
}
