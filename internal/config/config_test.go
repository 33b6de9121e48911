package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DPS_TIMEZONE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.DPS.Timezone != "America/Sao_Paulo" {
		t.Errorf("timezone = %q", cfg.DPS.Timezone)
	}
	if cfg.DPS.ProfileTTL != 10*time.Minute {
		t.Errorf("profile ttl = %v", cfg.DPS.ProfileTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled")
	}
	origins := cfg.Security.CORS.AllowedOrigins
	if len(origins) != 2 || origins[1] != "https://admin.example.com" {
		t.Errorf("origins = %v", origins)
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("DPS_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown time zone")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}
