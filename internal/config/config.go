package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every runtime setting the API server needs.
type Config struct {
	DatabaseURL string
	AppPort     string
	RedisURL    string // empty means the in-memory cart store is used
	JWTSecret   string
	LogLevel    string

	OfferCount         int
	OfferDurationHours int
	OfferFallbackPrice float64
}

// Load reads .env (if present) and the process environment.
func Load(log *logrus.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Info("no .env file found, using environment variables")
		} else {
			log.Warnf("error loading .env file: %v", err)
		}
	}

	return &Config{
		DatabaseURL:        getEnv(log, "DATABASE_URL", ""),
		AppPort:            getEnv(log, "APP_PORT", "8080"),
		RedisURL:           getEnv(log, "REDIS_URL", ""),
		JWTSecret:          getEnv(log, "JWT_SECRET", ""),
		LogLevel:           getEnv(log, "LOG_LEVEL", "info"),
		OfferCount:         getEnvInt(log, "OFFER_COUNT", 3),
		OfferDurationHours: getEnvInt(log, "OFFER_DURATION_HOURS", 24),
		OfferFallbackPrice: getEnvFloat(log, "OFFER_FALLBACK_PRICE", 1000),
	}
}

func getEnv(log *logrus.Logger, key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if fallback != "" {
		log.Debugf("environment variable %s not set, using default %q", key, fallback)
	}
	return fallback
}

func getEnvInt(log *logrus.Logger, key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("invalid value %q for %s, using default %d", raw, key, fallback)
		return fallback
	}
	return v
}

func getEnvFloat(log *logrus.Logger, key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warnf("invalid value %q for %s, using default %g", raw, key, fallback)
		return fallback
	}
	return v
}
