package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	var cfg Config
	cfg.Auth.JWTSecret = strings.Repeat("s", 32)
	cfg.Auth.AccessTokenTTL = 1
	cfg.Auth.PasswordHashCost = 12
	cfg.Search.DefaultLimit = 100
	cfg.Search.MaxLimit = 100
	cfg.Search.MaxPromptItems = 20
	cfg.Reddit.Sort = "new"
	cfg.Reddit.TimeWindow = "day"
	return cfg
}

func TestConfig_Validate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short jwt secret")
	}
}

func TestConfig_Validate_BadHashCost(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.PasswordHashCost = 99
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range hash cost")
	}
}

func TestConfig_Validate_BadSearchLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultLimit = 500
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for default_limit > max_limit")
	}
}

func TestConfig_Validate_BadRedditSort(t *testing.T) {
	cfg := validConfig()
	cfg.Reddit.Sort = "spicy"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown sort")
	}
}
