package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Crime Dataset Config
	CrimeDataPath string `env:"CRIME_DATA_PATH" envDefault:"data/crimes.csv"`

	// Alert Config
	SOSRadiusMeters int `env:"SOS_RADIUS_METERS" envDefault:"500"`

	// User Directory Config
	UserMaxAge       time.Duration `env:"USER_MAX_AGE" envDefault:"24h"`
	EvictionInterval time.Duration `env:"EVICTION_INTERVAL" envDefault:"6h"`

	// HTTP Config
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
	StaticDir   string   `env:"STATIC_DIR"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла.
// Обязательных переменных нет: сервис стартует на значениях по умолчанию.
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CrimeDataPath:    getEnv("CRIME_DATA_PATH", "data/crimes.csv"),
		SOSRadiusMeters:  getEnvAsInt("SOS_RADIUS_METERS", 500),
		UserMaxAge:       getEnvAsDuration("USER_MAX_AGE", 24*time.Hour),
		EvictionInterval: getEnvAsDuration("EVICTION_INTERVAL", 6*time.Hour),
		CORSOrigins:      getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
		StaticDir:        os.Getenv("STATIC_DIR"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		WebhookURL:       os.Getenv("WEBHOOK_URL"),
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:   getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		APIKeys:          getEnvAsSlice("API_KEYS", nil),
	}

	if cfg.SOSRadiusMeters <= 0 {
		return nil, fmt.Errorf("SOS_RADIUS_METERS must be positive")
	}
	if cfg.UserMaxAge <= 0 || cfg.EvictionInterval <= 0 {
		return nil, fmt.Errorf("USER_MAX_AGE and EVICTION_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice возвращает значение переменной окружения как список строк,
// разделенных запятыми, или значение по умолчанию
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
