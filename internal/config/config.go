package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Simulator Config
	HomeLatitude      float64 `env:"HOME_LATITUDE" envDefault:"40.7128"`
	HomeLongitude     float64 `env:"HOME_LONGITUDE" envDefault:"-74.0060"`
	UpdateFrequency   float64 `env:"UPDATE_FREQUENCY" envDefault:"1.0"`
	MaxWanderDistance float64 `env:"MAX_WANDER_DISTANCE" envDefault:"2000"`
	PanicProbability  float64 `env:"PANIC_PROBABILITY" envDefault:"0.01"`

	// Geofence Config
	DefaultGeofenceRadius float64       `env:"DEFAULT_GEOFENCE_RADIUS" envDefault:"1000"`
	AlertCooldown         time.Duration `env:"ALERT_COOLDOWN" envDefault:"30s"`

	// Audit Log Config
	LogDirectory string `env:"LOG_DIRECTORY" envDefault:"data"`
	LogFilename  string `env:"LOG_FILENAME" envDefault:"audit_log.jsonl"`
	BufferSize   int    `env:"LOGGER_BUFFER_SIZE" envDefault:"50"`
	MaxFileSize  int64  `env:"LOGGER_MAX_FILE_SIZE" envDefault:"5242880"`
	CacheSize    int    `env:"LOGGER_CACHE_SIZE" envDefault:"1000"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла.
// Числовые параметры симулятора проверяются здесь: невалидная конфигурация -
// ошибка запуска, а не рантайма.
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HomeLatitude:      getEnvAsFloat("HOME_LATITUDE", 40.7128),
		HomeLongitude:     getEnvAsFloat("HOME_LONGITUDE", -74.0060),
		UpdateFrequency:   getEnvAsFloat("UPDATE_FREQUENCY", 1.0),
		MaxWanderDistance: getEnvAsFloat("MAX_WANDER_DISTANCE", 2000),
		PanicProbability:  getEnvAsFloat("PANIC_PROBABILITY", 0.01),

		DefaultGeofenceRadius: getEnvAsFloat("DEFAULT_GEOFENCE_RADIUS", 1000),
		AlertCooldown:         getEnvAsDuration("ALERT_COOLDOWN", 30*time.Second),

		LogDirectory: getEnv("LOG_DIRECTORY", "data"),
		LogFilename:  getEnv("LOG_FILENAME", "audit_log.jsonl"),
		BufferSize:   getEnvAsInt("LOGGER_BUFFER_SIZE", 50),
		MaxFileSize:  int64(getEnvAsInt("LOGGER_MAX_FILE_SIZE", 5*1024*1024)),
		CacheSize:    getEnvAsInt("LOGGER_CACHE_SIZE", 1000),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate проверяет значения, молчаливое исправление которых скрыло бы ошибку оператора
func (c *Config) validate() error {
	if c.HomeLatitude < -90 || c.HomeLatitude > 90 {
		return fmt.Errorf("HOME_LATITUDE must be between -90 and 90, got %v", c.HomeLatitude)
	}
	if c.HomeLongitude < -180 || c.HomeLongitude > 180 {
		return fmt.Errorf("HOME_LONGITUDE must be between -180 and 180, got %v", c.HomeLongitude)
	}
	if c.UpdateFrequency <= 0 {
		return fmt.Errorf("UPDATE_FREQUENCY must be positive, got %v", c.UpdateFrequency)
	}
	if c.MaxWanderDistance <= 0 {
		return fmt.Errorf("MAX_WANDER_DISTANCE must be positive, got %v", c.MaxWanderDistance)
	}
	if c.PanicProbability < 0 || c.PanicProbability > 1 {
		return fmt.Errorf("PANIC_PROBABILITY must be between 0 and 1, got %v", c.PanicProbability)
	}
	if c.DefaultGeofenceRadius <= 0 {
		return fmt.Errorf("DEFAULT_GEOFENCE_RADIUS must be positive, got %v", c.DefaultGeofenceRadius)
	}
	if c.BufferSize <= 0 || c.MaxFileSize <= 0 || c.CacheSize <= 0 {
		return fmt.Errorf("audit log sizes must be positive")
	}
	return nil
}

// LogFilePath возвращает полный путь к живому файлу журнала аудита
func (c *Config) LogFilePath() string {
	return filepath.Join(c.LogDirectory, c.LogFilename)
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
