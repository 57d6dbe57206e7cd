package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backend names accepted by StorageConfig.Backend.
const (
	StorageBackendFile   = "file"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
}

// AppConfig holds application-wide configuration
type AppConfig struct {
	Env         string
	ServiceName string
}

// StorageConfig selects and configures the local key-value store backing the
// feedback and scan history blobs
type StorageConfig struct {
	Backend string
	Dir     string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getEnv("MEDISCAN_ENV", "development"),
			ServiceName: getEnv("MEDISCAN_SERVICE_NAME", "mediscan"),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", StorageBackendFile),
			Dir:     getEnv("STORAGE_DIR", ".mediscan"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	switch cfg.Storage.Backend {
	case StorageBackendFile, StorageBackendRedis, StorageBackendMemory:
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
