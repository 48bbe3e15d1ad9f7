// internal/config/config.go
//
// Process configuration from the environment.
// A .env file in the working directory is loaded first (if present);
// real environment variables win over it.
//
// Variables (defaults in parentheses):
//   - PORT (5175), LOG_LEVEL (info)
//   - JWT_SECRET (dev_secret_change_me), JWT_EXPIRES_DAYS (1), COOKIE_NAME (crossword_token)
//   - CLIENT_ORIGIN (http://localhost:5173), NODE_ENV
//   - LEADERBOARD_DSN (in-memory SQLite), HINTS_ENABLED (true)
//   - DAILY_SALT (local_dev_salt), LEVELS_FILE (embedded levels)

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DefaultLeaderboardDSN keeps the leaderboard in process memory.
const DefaultLeaderboardDSN = "file:leaderboard?mode=memory&cache=shared"

// Config is the resolved configuration.
type Config struct {
	Port           string
	LogLevel       zerolog.Level
	JWTSecret      string
	TokenTTL       time.Duration
	CookieName     string
	CookieSecure   bool
	ClientOrigin   string
	LeaderboardDSN string
	HintsEnabled   bool
	DailySalt      string
	LevelsFile     string
}

// Load reads .env (best effort) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env.
func FromEnv() Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       lvl,
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:       time.Duration(envInt("JWT_EXPIRES_DAYS", 1)) * 24 * time.Hour,
		CookieName:     getEnv("COOKIE_NAME", "crossword_token"),
		CookieSecure:   os.Getenv("NODE_ENV") == "production",
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		LeaderboardDSN: getEnv("LEADERBOARD_DSN", DefaultLeaderboardDSN),
		HintsEnabled:   envBool("HINTS_ENABLED", true),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		LevelsFile:     os.Getenv("LEVELS_FILE"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
