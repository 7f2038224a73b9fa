package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application settings.
type Config struct {
	HTTPAddr        string        // Dirección de escucha HTTP
	RedisAddr       string        // Vacío usa caché en memoria
	CacheTTL        time.Duration // Expiración de proyecciones en Redis
	RateLimit       int           // Peticiones por ventana y por IP
	RateLimitWindow time.Duration
	Currency        string // Código ISO 4217 para mostrar montos
	LogLevel        logrus.Level
	LogFormat       string // "text" o "json"
}

// Load reads the configuration from a .env file, when present, and the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logrus.Debug(".env file not found, using environment only")
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CacheTTL:        getDuration("CACHE_TTL", time.Hour),
		RateLimit:       getInt("RATE_LIMIT", 30),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),
		Currency:        strings.ToUpper(getEnv("CURRENCY", "USD")),
		LogLevel:        level,
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}, nil
}

// NewLogger builds the application logger from the configuration.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// getEnv returns the environment variable or a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
