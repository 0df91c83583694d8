// ABOUTME: Wikipedia API client implementing place search and enrichment
// ABOUTME: Wraps the MediaWiki search API and REST summary endpoint with rate limiting

package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	coreerrors "github.com/danooki/2509-PlaceTimelineBackEnd/core/errors"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

const (
	searchEndpoint  = "https://en.wikipedia.org/w/api.php"
	summaryEndpoint = "https://en.wikipedia.org/api/rest_v1/page/summary/%s"

	// Wikimedia asks anonymous clients to stay well under 200 req/s;
	// 10 req/s with small bursts is far below any throttling threshold
	requestsPerSecond = 10
	burstSize         = 5
)

// Client talks to the Wikipedia APIs. It implements both the PlaceSearcher
// and PlaceEnricher interfaces.
type Client struct {
	deps    interfaces.Dependencies
	limiter *rate.Limiter
}

// NewClient creates a new Wikipedia API client.
func NewClient(deps interfaces.Dependencies) *Client {
	return &Client{
		deps:    deps,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// searchResponse mirrors the MediaWiki list=search response shape.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title     string `json:"title"`
			Snippet   string `json:"snippet"`
			Size      int    `json:"size"`
			Timestamp string `json:"timestamp"`
		} `json:"search"`
	} `json:"query"`
}

// Search performs a full-text search and returns raw candidates.
// Snippets are returned as-is, including the search-match HTML markup.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.SearchCandidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", limit))
	params.Set("format", "json")

	body, err := c.get(ctx, searchEndpoint+"?"+params.Encode(), "wikipedia search")
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search response")
	}

	candidates := make([]domain.SearchCandidate, 0, len(parsed.Query.Search))
	for _, result := range parsed.Query.Search {
		candidate := domain.SearchCandidate{
			Title:   result.Title,
			Snippet: result.Snippet,
			Size:    result.Size,
		}
		if ts, err := time.Parse(time.RFC3339, result.Timestamp); err == nil {
			candidate.Timestamp = ts
		}
		candidates = append(candidates, candidate)
	}

	c.deps.Logger.Debug("Wikipedia search completed", map[string]interface{}{
		"query":      query,
		"candidates": len(candidates),
	})

	return candidates, nil
}

// summaryResponse mirrors the REST page summary response shape.
type summaryResponse struct {
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// Enrich fetches the page summary for a title. The Country field is left
// empty; callers derive it from the extract text.
func (c *Client) Enrich(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(summaryEndpoint, url.PathEscape(title))
	body, err := c.get(ctx, endpoint, "wikipedia summary")
	if err != nil {
		return nil, err
	}

	var parsed summaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse summary response")
	}

	return &domain.PlaceEnrichment{
		Thumbnail: parsed.Thumbnail.Source,
		Extract:   parsed.Extract,
	}, nil
}

// get fetches a URL and returns the body, mapping failures to ExternalAPIError.
func (c *Client) get(ctx context.Context, endpoint string, api string) ([]byte, error) {
	if c.deps.HTTPClient == nil {
		return nil, &coreerrors.ExternalAPIError{API: api, Message: "HTTP client not configured"}
	}

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: api, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        api,
			StatusCode: resp.StatusCode(),
			Message:    "request failed",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read response body")
	}

	return body, nil
}
