package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if !cfg.Latency.Enabled || cfg.Latency.Scale != 1 {
		t.Fatalf("unexpected latency defaults %+v", cfg.Latency)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled without a url")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected two default origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.RateLimit.MessageWindow != time.Minute {
		t.Fatalf("unexpected message window %v", cfg.RateLimit.MessageWindow)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvLatencyEnabled, "false")
	t.Setenv(EnvLatencyScale, "0.5")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvCalendarTZ, "America/New_York")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.Latency.Enabled {
		t.Fatal("expected latency disabled")
	}
	if cfg.Latency.Scale != 0.5 {
		t.Fatalf("unexpected scale %v", cfg.Latency.Scale)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected redis enabled")
	}
	loc, err := cfg.Calendar.Location()
	if err != nil {
		t.Fatalf("unexpected location error: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Fatalf("unexpected location %s", loc)
	}
}

func TestLoad_NegativeScale(t *testing.T) {
	t.Setenv(EnvLatencyScale, "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected negative latency scale to return an error")
	}
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	t.Setenv(EnvCalendarTZ, "Mars/Olympus")
	if _, err := Load(); err == nil {
		t.Fatal("expected invalid time zone to return an error")
	}
}
