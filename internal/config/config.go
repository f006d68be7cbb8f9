package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the whole application configuration.
// It is populated from environment variables.
type Config struct {
	App    AppConfig
	Log    LogConfig
	Paging PagingConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Seed   bool // pre-populate the in-memory stores
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string // zerolog level name
}

type PagingConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration // detail cache entry lifetime
}

var environments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
	"test":        true,
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "LibraryLite API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Paging: PagingConfig{
			DefaultPageSize: getEnvInt("PAGE_SIZE_DEFAULT", 10),
			MaxPageSize:     getEnvInt("PAGE_SIZE_MAX", 100),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Seed: getEnvBool("SEED_DATA", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !environments[c.App.Environment] {
		return fmt.Errorf("APP_ENV %q is not one of development, staging, production, test", c.App.Environment)
	}

	port, err := strconv.Atoi(c.App.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("APP_PORT %q must be a number between 1 and 65535", c.App.Port)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL %q: %w", c.Log.Level, err)
	}

	if c.Paging.DefaultPageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE_DEFAULT must be positive")
	}
	if c.Paging.MaxPageSize < c.Paging.DefaultPageSize {
		return fmt.Errorf("PAGE_SIZE_MAX (%d) must not be smaller than PAGE_SIZE_DEFAULT (%d)",
			c.Paging.MaxPageSize, c.Paging.DefaultPageSize)
	}

	if c.Redis.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive when REDIS_ENABLED is set")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
