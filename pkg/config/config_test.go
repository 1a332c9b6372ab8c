package config

import (
	"os"
	"testing"
	"time"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SHOPPOINT_APP_ENV", "production")
	t.Setenv("SHOPPOINT_APP_PORT", "8081")
}

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("SHOPPOINT_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected redis to be enabled with a URL set")
	}
	if cfg.Retail.Currency != "GHS" {
		t.Fatalf("expected default currency GHS, got %q", cfg.Retail.Currency)
	}
	if cfg.Retail.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("expected default idempotency ttl 24h, got %v", cfg.Retail.IdempotencyTTL)
	}
	if cfg.Retail.CheckoutIdemTTL != 168*time.Hour {
		t.Fatalf("expected default checkout ttl 168h, got %v", cfg.Retail.CheckoutIdemTTL)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv("SHOPPOINT_APP_ENV"); err != nil {
		t.Fatalf("failed to unset env: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestRedisDisabledWithoutEndpoint(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected redis disabled without url or address")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEVELOPMENT"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
