// ABOUTME: Ranking aggregator turning raw candidates into ordered suggestions
// ABOUTME: Scores, enriches concurrently with failure isolation, sorts and truncates

package places

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/textutil"
)

// DefaultReturnLimit is the suggestion count returned when no limit is given.
const DefaultReturnLimit = 3

// RankerConfig holds tuning knobs for the ranking aggregator.
type RankerConfig struct {
	// EnrichTimeout bounds each candidate's enrichment call
	EnrichTimeout time.Duration

	// MaxConcurrent limits in-flight enrichment calls
	MaxConcurrent int
}

// DefaultRankerConfig returns the default ranker configuration.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		EnrichTimeout: 5 * time.Second,
		MaxConcurrent: 5,
	}
}

// Ranker consumes a batch of candidates and produces an ordered, truncated
// suggestion list. Scoring is pure; only the injected enricher may suspend.
type Ranker struct {
	logger interfaces.Logger
	cfg    RankerConfig
}

// NewRanker creates a new ranking aggregator.
func NewRanker(logger interfaces.Logger, cfg RankerConfig) *Ranker {
	defaults := DefaultRankerConfig()
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = defaults.EnrichTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaults.MaxConcurrent
	}

	return &Ranker{
		logger: logger,
		cfg:    cfg,
	}
}

// Rank scores and enriches each candidate, sorts by confidence descending
// (ties keep input order) and truncates to limit. Enrichment failures
// downgrade individual suggestions, never the batch. A nil enricher skips
// enrichment entirely.
func (r *Ranker) Rank(ctx context.Context, query string, candidates []domain.SearchCandidate, limit int, enricher interfaces.PlaceEnricher) []domain.Suggestion {
	if limit <= 0 {
		limit = DefaultReturnLimit
	}

	suggestions := make([]domain.Suggestion, len(candidates))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, r.cfg.MaxConcurrent)

	for i, candidate := range candidates {
		wg.Add(1)
		go func(idx int, cand domain.SearchCandidate) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
				suggestions[idx] = r.buildSuggestion(ctx, query, cand, enricher)
			case <-ctx.Done():
				// Cancelled before enrichment could start; keep the pure score
				suggestions[idx] = r.buildSuggestion(ctx, query, cand, nil)
			}
		}(i, candidate)
	}

	wg.Wait()

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}

// buildSuggestion scores a single candidate and attaches enrichment data.
func (r *Ranker) buildSuggestion(ctx context.Context, query string, cand domain.SearchCandidate, enricher interfaces.PlaceEnricher) domain.Suggestion {
	cleaned := textutil.CleanSnippet(cand.Snippet)
	cls := Classify(cand.Title, cleaned)
	confidence := composeConfidence(cls, query, cand.Title, cleaned)

	suggestion := domain.Suggestion{
		Title:           cand.Title,
		Snippet:         cleaned,
		Confidence:      confidence,
		PlaceType:       cls.PlaceType,
		PlaceConfidence: cls.Confidence,
		Size:            cand.Size,
		Timestamp:       cand.Timestamp,
	}

	if enricher != nil {
		if enrichment := r.enrich(ctx, cand.Title, enricher); enrichment != nil {
			suggestion.Thumbnail = enrichment.Thumbnail
			suggestion.Country = enrichment.Country
			if suggestion.Country == "" {
				suggestion.Country = ExtractCountry(enrichment.Extract)
			}
		}
	}

	if suggestion.Country == "" {
		suggestion.Country = ExtractCountry(cleaned)
	}

	return suggestion
}

// enrich calls the collaborator with a per-candidate timeout. Failures and
// panics are contained here so one candidate cannot corrupt another's result.
func (r *Ranker) enrich(ctx context.Context, title string, enricher interfaces.PlaceEnricher) (result *domain.PlaceEnrichment) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Warn("Recovered from panic in enrichment", map[string]interface{}{
					"title": title,
					"panic": fmt.Sprintf("%v", rec),
				})
			}
			result = nil
		}
	}()

	enrichCtx, cancel := context.WithTimeout(ctx, r.cfg.EnrichTimeout)
	defer cancel()

	enrichment, err := enricher.Enrich(enrichCtx, title)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("Enrichment failed for candidate", map[string]interface{}{
				"title": title,
				"error": err.Error(),
			})
		}
		return nil
	}

	return enrichment
}
