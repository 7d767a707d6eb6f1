package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BOARD_WIDTH", "BOARD_HEIGHT", "PLAYER1_COLOR", "ALLOWED_ORIGINS", "SESSION_IDLE_TIMEOUT_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7, cfg.BoardColumns)
	assert.Equal(t, 6, cfg.BoardRows)
	assert.Equal(t, "red", cfg.Player1Color)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.SessionIdleTimeout)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "9")
	t.Setenv("BOARD_HEIGHT", "not-a-number")
	t.Setenv("PLAYER2_COLOR", "yellow")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := LoadConfig()

	assert.Equal(t, 9, cfg.BoardColumns)
	assert.Equal(t, 6, cfg.BoardRows, "invalid integer falls back to default")
	assert.Equal(t, "yellow", cfg.Player2Color)
	assert.Equal(t, []string{"http://localhost:5173", "https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_NonPositiveValuesFallBack(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "0")
	t.Setenv("BOARD_HEIGHT", "-3")
	t.Setenv("SESSION_TOKEN_TTL_MINUTES", "0")
	t.Setenv("SESSION_IDLE_TIMEOUT_MINUTES", "-1")
	t.Setenv("CLEANUP_INTERVAL_MINUTES", "0")

	cfg := LoadConfig()

	assert.Equal(t, 7, cfg.BoardColumns)
	assert.Equal(t, 6, cfg.BoardRows)
	assert.Equal(t, 12*time.Hour, cfg.SessionTokenTTL)
	assert.Equal(t, time.Hour, cfg.SessionIdleTimeout)
	assert.Equal(t, 10*time.Minute, cfg.CleanupInterval)
}

func TestGetEnvAsPositiveInt(t *testing.T) {
	t.Setenv("C4_TEST_INT", "5")
	assert.Equal(t, 5, GetEnvAsPositiveInt("C4_TEST_INT", 1))

	t.Setenv("C4_TEST_INT", "0")
	assert.Equal(t, 1, GetEnvAsPositiveInt("C4_TEST_INT", 1))
}
