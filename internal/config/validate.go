package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Pantry.validate(); err != nil {
		return fmt.Errorf("pantry: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("format must be json or text (got %q)", l.Format)
}

func (p *PantryConfig) validate() error {
	if p.CriticalRatio <= 0 {
		return fmt.Errorf("critical_ratio must be > 0 (got %v)", p.CriticalRatio)
	}
	if p.WarningRatio <= p.CriticalRatio {
		return fmt.Errorf("warning_ratio must be > critical_ratio (got %v <= %v)", p.WarningRatio, p.CriticalRatio)
	}
	if p.WarningRatio > 1 {
		return fmt.Errorf("warning_ratio must be <= 1 (got %v)", p.WarningRatio)
	}
	if p.MaxItemsPerUser <= 0 {
		return fmt.Errorf("max_items_per_user must be > 0 (got %d)", p.MaxItemsPerUser)
	}
	if p.DashboardTopN < 0 {
		return fmt.Errorf("dashboard_top_n must be >= 0 (got %d)", p.DashboardTopN)
	}
	return nil
}
