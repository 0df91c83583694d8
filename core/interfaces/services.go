// ABOUTME: Collaborator interfaces for the place suggestion pipeline
// ABOUTME: Defines contracts for search, enrichment and accent color collaborators

package interfaces

import (
	"context"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

// PlaceSearcher performs the upstream full-text search that produces raw candidates.
type PlaceSearcher interface {
	// Search returns up to limit raw candidates for the query.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchCandidate, error)
}

// PlaceEnricher fetches thumbnail and summary data for a single candidate title.
// Implementations may be slow or fail; callers isolate failures per candidate.
type PlaceEnricher interface {
	// Enrich returns enrichment data for the given title.
	Enrich(ctx context.Context, title string) (*domain.PlaceEnrichment, error)
}

// AccentColorService extracts prominent colors from thumbnail images.
type AccentColorService interface {
	ExtractAccent(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	ExtractAccentBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor
}
