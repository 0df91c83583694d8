// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and upstream data sources.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation
// - cache/redis: Redis-based cache implementation with ReJSON support
// - cache/sqlite: File-based persistent cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger implementation
// - wikipedia: Place search and summary enrichment client
// - scrape: Page metadata scraping used as an enrichment fallback
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and rate limiting
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
package infrastructure
