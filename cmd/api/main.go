// ABOUTME: Main entry point for the Place Timeline API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/api"
	"github.com/danooki/2509-PlaceTimelineBackEnd/api/handlers"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/places"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/services"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/timeline"
	"github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/cache/memory"
	"github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/cache/redis"
	"github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/cache/sqlite"
	stdhttp "github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/http/standard"
	logrusadapter "github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/logger/logrus"
	"github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/scrape"
	"github.com/danooki/2509-PlaceTimelineBackEnd/infrastructure/wikipedia"
	"github.com/danooki/2509-PlaceTimelineBackEnd/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.NewLogger(cfg.LogLevel)
	logger.Info("Starting Place Timeline API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"cache_type":   cfg.Cache.Type,
		"return_limit": cfg.Suggest.ReturnLimit,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Wikipedia provides search and primary enrichment; page scraping fills
	// in thumbnails and extracts the summary API doesn't have
	wikiClient := wikipedia.NewClient(deps)
	enricher := scrape.NewFallbackEnricher(wikiClient, scrape.NewPageScraper(logger), logger)

	suggestService := places.NewSuggestService(deps, wikiClient, enricher, places.SuggestConfig{
		ReturnLimit: cfg.Suggest.ReturnLimit,
		SearchLimit: cfg.Suggest.SearchLimit,
	})
	timelineService := timeline.NewService(deps, timeline.Config{})
	accentColors := services.NewAccentColorExtractor(deps)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	})

	handlers.NewSuggestHandler(suggestService, accentColors).RegisterRoutes(humaAPI)
	handlers.NewTimelineHandler(timelineService).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to memory
// when an external backend is unavailable.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}
