// ABOUTME: Suggest service orchestrating search, scoring and enrichment
// ABOUTME: Provides business logic for place suggestions independent of HTTP layer

package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	coreerrors "github.com/danooki/2509-PlaceTimelineBackEnd/core/errors"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

// SuggestConfig holds configuration for the suggest service.
type SuggestConfig struct {
	// ReturnLimit is the maximum number of suggestions returned
	ReturnLimit int

	// SearchLimit is how many raw hits to request from the search collaborator
	SearchLimit int

	// CacheTTL is how long ranked suggestion batches are cached
	CacheTTL time.Duration
}

// DefaultSuggestConfig returns the default suggest configuration.
func DefaultSuggestConfig() SuggestConfig {
	return SuggestConfig{
		ReturnLimit: DefaultReturnLimit,
		SearchLimit: 10,
		CacheTTL:    24 * time.Hour,
	}
}

// SuggestService handles place suggestion operations.
type SuggestService struct {
	deps     interfaces.Dependencies
	searcher interfaces.PlaceSearcher
	enricher interfaces.PlaceEnricher
	ranker   *Ranker
	cfg      SuggestConfig
}

// NewSuggestService creates a new suggest service instance.
func NewSuggestService(deps interfaces.Dependencies, searcher interfaces.PlaceSearcher, enricher interfaces.PlaceEnricher, cfg SuggestConfig) *SuggestService {
	defaults := DefaultSuggestConfig()
	if cfg.ReturnLimit <= 0 {
		cfg.ReturnLimit = defaults.ReturnLimit
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaults.SearchLimit
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}

	return &SuggestService{
		deps:     deps,
		searcher: searcher,
		enricher: enricher,
		ranker:   NewRanker(deps.Logger, RankerConfig{}),
		cfg:      cfg,
	}
}

// validateQuery validates suggestion query parameters.
func (s *SuggestService) validateQuery(query string) error {
	if query == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "query cannot be empty"}
	}

	if len(query) < 2 {
		return &coreerrors.ValidationError{Field: "query", Message: "query must be at least 2 characters"}
	}

	if len(query) > 100 {
		return &coreerrors.ValidationError{Field: "query", Message: "query cannot exceed 100 characters"}
	}

	return nil
}

// Suggest returns ranked place suggestions for a user query.
func (s *SuggestService) Suggest(ctx context.Context, query string) ([]domain.Suggestion, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("suggest:%s", query)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var suggestions []domain.Suggestion
			if err := json.Unmarshal(data, &suggestions); err == nil {
				return suggestions, nil
			}
		}
	}

	if s.searcher == nil {
		return nil, &coreerrors.ExternalAPIError{API: "search", Message: "search collaborator not configured"}
	}

	candidates, err := s.searcher.Search(ctx, query, s.cfg.SearchLimit)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to search places")
	}

	suggestions := s.ranker.Rank(ctx, query, candidates, s.cfg.ReturnLimit, s.enricher)

	if s.deps.Cache != nil && len(suggestions) > 0 {
		if data, err := json.Marshal(suggestions); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.CacheTTL)
		}
	}

	return suggestions, nil
}
