package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	SessionTTLHrs int
	Env           string
}

// Load reads configuration from the environment, honoring a .env file if
// one is present. Everything has a development default.
func Load() *Config {
	_ = godotenv.Load()

	ttl, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil || ttl <= 0 {
		ttl = 24
	}

	c := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "mentorship.db"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-key"),
		SessionTTLHrs: ttl,
		Env:           getEnv("ENV", "dev"),
	}

	if c.Env != "dev" && c.SessionSecret == "dev-secret-key" {
		logrus.Warn("SESSION_SECRET is the development default")
	}
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
