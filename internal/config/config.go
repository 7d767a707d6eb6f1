package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port               string
	BoardColumns       int
	BoardRows          int
	Player1Color       string
	Player2Color       string
	AllowedOrigins     []string
	JWTSecret          string
	SessionTokenTTL    time.Duration
	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration
	LogLevel           string
}

var AppConfig *Config

// LoadEnvFile loads .env from the working directory or its parent.
// A missing file is not an error: the process environment is used as is.
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found, using process environment")
		}
	}
}

func LoadConfig() *Config {
	// Frontend & CORS
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	AppConfig = &Config{
		Port:               GetEnv("PORT", "8080"),
		BoardColumns:       GetEnvAsPositiveInt("BOARD_WIDTH", 7),
		BoardRows:          GetEnvAsPositiveInt("BOARD_HEIGHT", 6),
		Player1Color:       GetEnv("PLAYER1_COLOR", "red"),
		Player2Color:       GetEnv("PLAYER2_COLOR", "blue"),
		AllowedOrigins:     allowedOrigins,
		JWTSecret:          GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		SessionTokenTTL:    time.Duration(GetEnvAsPositiveInt("SESSION_TOKEN_TTL_MINUTES", 720)) * time.Minute,
		SessionIdleTimeout: time.Duration(GetEnvAsPositiveInt("SESSION_IDLE_TIMEOUT_MINUTES", 60)) * time.Minute,
		CleanupInterval:    time.Duration(GetEnvAsPositiveInt("CLEANUP_INTERVAL_MINUTES", 10)) * time.Minute,
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

// SetupLogging applies the configured level to the global zerolog logger.
func SetupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for sizes and durations, where zero or
// a negative value also falls back to the default.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value < 1 {
		log.Warn().Str("key", key).Int("value", value).Int("default", defaultValue).
			Msg("value must be positive, using default")
		return defaultValue
	}
	return value
}
