package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("DEV_AUTH_BYPASS", "true")
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.DevAuthBypass)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.HasDatabase())

	other := LoadConfig()
	other.Port = "1"
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfigFallbacks(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "-5m")
	t.Setenv("MAX_UPLOAD_SIZE", "")

	cfg := LoadConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, int64(5242880), cfg.MaxUploadSize)
}
