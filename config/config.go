package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	ServerPort      string
	SessionDBPath   string
	RefreshInterval time.Duration
	SeedDemoData    bool
}

// Load reads .env if present and falls back to defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerPort:      getEnv("PORT", "8080"),
		SessionDBPath:   getEnv("SESSION_DB_PATH", "savefood_session.db"),
		RefreshInterval: getDuration("REFRESH_INTERVAL", time.Minute),
		SeedDemoData:    getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func (c *Config) Development() bool {
	return c.Env != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
