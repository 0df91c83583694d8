// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, suggestion pipeline and cache settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Suggest contains suggestion pipeline configuration
	Suggest SuggestConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per rate window, 0 disables limiting
	RateLimit int

	// RateWindowSeconds is the rate limit window length
	RateWindowSeconds int
}

// SuggestConfig holds suggestion pipeline configuration
type SuggestConfig struct {
	// ReturnLimit is the maximum number of suggestions returned
	ReturnLimit int

	// SearchLimit is how many raw candidates are requested upstream
	SearchLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/sqlite/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Suggest: SuggestConfig{
			ReturnLimit: getEnvAsIntOrDefault("RETURN_LIMIT", 3),
			SearchLimit: getEnvAsIntOrDefault("SEARCH_LIMIT", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Suggest.ReturnLimit < 1 {
		return errors.New("return limit must be at least 1")
	}

	if c.Suggest.SearchLimit < c.Suggest.ReturnLimit {
		return errors.New("search limit must be at least the return limit")
	}

	switch c.Cache.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	default:
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	return nil
}
