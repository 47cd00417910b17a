package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Reddit.validate(); err != nil {
		return fmt.Errorf("reddit: %w", err)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..%d (got %d)", s.MaxLimit, s.DefaultLimit)
	}
	if s.MaxPromptItems <= 0 {
		return fmt.Errorf("max_prompt_items must be > 0 (got %d)", s.MaxPromptItems)
	}
	return nil
}

func (r *RedditConfig) validate() error {
	switch r.Sort {
	case "relevance", "hot", "top", "new", "comments":
	default:
		return fmt.Errorf("sort %q is not a valid listing sort", r.Sort)
	}
	switch r.TimeWindow {
	case "hour", "day", "week", "month", "year", "all":
	default:
		return fmt.Errorf("time_window %q is not a valid window", r.TimeWindow)
	}
	if r.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", r.MaxRetries)
	}
	return nil
}
