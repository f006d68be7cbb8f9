package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_PORT", "APP_VERSION", "LOG_LEVEL",
		"PAGE_SIZE_DEFAULT", "PAGE_SIZE_MAX", "REDIS_ENABLED", "REDIS_HOST",
		"REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL_SECONDS", "SEED_DATA",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "LibraryLite API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Paging.DefaultPageSize)
	assert.Equal(t, 100, cfg.Paging.MaxPageSize)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Host)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Seed)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PAGE_SIZE_DEFAULT", "20")
	t.Setenv("PAGE_SIZE_MAX", "50")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SEED_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Paging.DefaultPageSize)
	assert.Equal(t, 50, cfg.Paging.MaxPageSize)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Seed)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("PAGE_SIZE_DEFAULT", "ten")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Paging.DefaultPageSize)
	assert.False(t, cfg.Redis.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:    AppConfig{Environment: "development", Port: "8080"},
			Log:    LogConfig{Level: "info"},
			Paging: PagingConfig{DefaultPageSize: 10, MaxPageSize: 100},
			Cache:  CacheConfig{TTL: time.Minute},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown environment", func(c *Config) { c.App.Environment = "qa" }},
		{"non numeric port", func(c *Config) { c.App.Port = "http" }},
		{"port out of range", func(c *Config) { c.App.Port = "70000" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"zero default page size", func(c *Config) { c.Paging.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.Paging.MaxPageSize = 5 }},
		{"redis without ttl", func(c *Config) {
			c.Redis.Enabled = true
			c.Cache.TTL = 0
		}},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
