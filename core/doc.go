// Package core contains the business logic for the Place Timeline API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (SearchCandidate, Suggestion, Timeline, etc.)
// - textutil: Text normalization and snippet cleaning
// - places: Place classification, country extraction, confidence scoring and ranking
// - timeline: Place event timeline assembly from news feeds
// - services: Supporting services such as accent color extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the scoring pipeline
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
//	    "github.com/danooki/2509-PlaceTimelineBackEnd/core/places"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	suggestService := places.NewSuggestService(deps, searcher, enricher, places.SuggestConfig{})
//
//	// Rank place suggestions for a query
//	suggestions, err := suggestService.Suggest(ctx, "eiffel tower")
package core
