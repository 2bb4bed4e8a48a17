package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Host string
	Port int

	// Auth
	APIKey string

	// Default match configuration
	DefaultHomeTeam string
	DefaultAwayTeam string

	// Webhook delivery
	DeliveryStorePath  string
	DeliveryTimeout    time.Duration
	DeliveryRatePerSec float64
	DeliveryBurst      int

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host: envStr("BELIEVE_HOST", "0.0.0.0"),
		Port: envInt("BELIEVE_PORT", 8000),

		APIKey: envStr("API_KEY", ""),

		DefaultHomeTeam: envStr("DEFAULT_HOME_TEAM", "AFC Richmond"),
		DefaultAwayTeam: envStr("DEFAULT_AWAY_TEAM", "West Ham United"),

		DeliveryStorePath:  envStr("WEBHOOK_STORE_PATH", "data/webhook_deliveries.db"),
		DeliveryTimeout:    time.Duration(envInt("WEBHOOK_TIMEOUT_SEC", 10)) * time.Second,
		DeliveryRatePerSec: envFloat("WEBHOOK_RATE_PER_SEC", 10),
		DeliveryBurst:      envInt("WEBHOOK_BURST", 10),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
