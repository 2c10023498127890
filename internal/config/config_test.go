package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mentorship.db", cfg.DatabasePath)
	assert.Equal(t, "dev-secret-key", cfg.SessionSecret)
	assert.Equal(t, 24, cfg.SessionTTLHrs)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("ENV", "prod")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "super-secret", cfg.SessionSecret)
	assert.Equal(t, 2, cfg.SessionTTLHrs)
	assert.Equal(t, "prod", cfg.Env)
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")
	assert.Equal(t, 24, Load().SessionTTLHrs)

	t.Setenv("SESSION_TTL_HOURS", "-3")
	assert.Equal(t, 24, Load().SessionTTLHrs)
}
