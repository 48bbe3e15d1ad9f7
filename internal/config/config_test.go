package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "JWT_EXPIRES_DAYS", "COOKIE_NAME", "LEADERBOARD_DSN", "HINTS_ENABLED", "LEVELS_FILE", "NODE_ENV"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Port != "5175" || c.CookieName != "crossword_token" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.LeaderboardDSN != DefaultLeaderboardDSN || !c.HintsEnabled || c.CookieSecure {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.TokenTTL != 24*time.Hour || c.LogLevel != zerolog.InfoLevel {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_EXPIRES_DAYS", "3")
	t.Setenv("HINTS_ENABLED", "off")
	t.Setenv("LEADERBOARD_DSN", "memory")
	t.Setenv("NODE_ENV", "production")

	c := FromEnv()
	if c.Port != "8080" || c.LogLevel != zerolog.DebugLevel || c.TokenTTL != 72*time.Hour {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.HintsEnabled || c.LeaderboardDSN != "memory" || !c.CookieSecure {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("JWT_EXPIRES_DAYS", "soon")
	t.Setenv("HINTS_ENABLED", "maybe")

	c := FromEnv()
	if c.LogLevel != zerolog.InfoLevel || c.TokenTTL != 24*time.Hour || !c.HintsEnabled {
		t.Fatalf("expected fallbacks, got %+v", c)
	}
}
