package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	MaxSessions  int
	SessionTTL   int // seconds

	// desktop viewer
	WindowWidth  int
	WindowHeight int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		MaxSessions:  getEnvAsInt("MAX_SESSIONS", 64),
		SessionTTL:   getEnvAsInt("SESSION_TTL", 1800),
		WindowWidth:  getEnvAsInt("WINDOW_WIDTH", 1024),
		WindowHeight: getEnvAsInt("WINDOW_HEIGHT", 768),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// getEnvAsInt falls back to defaultVal for unset, malformed or non-positive values.
func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}
