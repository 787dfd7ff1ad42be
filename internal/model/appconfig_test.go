package model

import (
	"testing"
	"time"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.NutritionEndpoint != DefaultNutritionEndpoint {
		t.Errorf("expected default endpoint %s, got %s", DefaultNutritionEndpoint, cfg.NutritionEndpoint)
	}
	if cfg.HasNutritionCredentials() {
		t.Error("default config must not carry credentials")
	}
}

func TestLookupTimeout(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.LookupTimeout() != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.LookupTimeout())
	}

	cfg.NutritionTimeout = 3
	if cfg.LookupTimeout() != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.LookupTimeout())
	}

	cfg.NutritionTimeout = -1
	if cfg.LookupTimeout() != 10*time.Second {
		t.Errorf("expected fallback to 10s, got %s", cfg.LookupTimeout())
	}
}

func TestHasNutritionCredentials(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.NutritionAppID = "id"
	if cfg.HasNutritionCredentials() {
		t.Error("app id alone should not count as credentials")
	}
	cfg.NutritionAppKey = "key"
	if !cfg.HasNutritionCredentials() {
		t.Error("expected credentials to be present")
	}
}
