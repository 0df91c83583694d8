// ABOUTME: Timeline service assembling dated news events for a place
// ABOUTME: Fetches and parses news RSS, cleans summaries and extracts countries

package timeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	coreerrors "github.com/danooki/2509-PlaceTimelineBackEnd/core/errors"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/places"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/textutil"
)

const newsSearchFeedURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// Config holds configuration for the timeline service.
type Config struct {
	// EventLimit caps the number of events in a timeline
	EventLimit int

	// CacheTTL is how long assembled timelines are cached
	CacheTTL time.Duration
}

// DefaultConfig returns the default timeline configuration.
func DefaultConfig() Config {
	return Config{
		EventLimit: 20,
		CacheTTL:   time.Hour,
	}
}

// Service builds place timelines from news feeds.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new timeline service instance.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	defaults := DefaultConfig()
	if cfg.EventLimit <= 0 {
		cfg.EventLimit = defaults.EventLimit
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}

	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// validatePlace validates the place name parameter.
func (s *Service) validatePlace(place string) error {
	if place == "" {
		return &coreerrors.ValidationError{Field: "place", Message: "place cannot be empty"}
	}

	if len(place) > 100 {
		return &coreerrors.ValidationError{Field: "place", Message: "place cannot exceed 100 characters"}
	}

	return nil
}

// BuildTimeline assembles a newest-first event timeline for a place from
// news search results.
func (s *Service) BuildTimeline(ctx context.Context, place string) (*domain.Timeline, error) {
	if err := s.validatePlace(place); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("timeline:%s", place)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var timeline domain.Timeline
			if err := json.Unmarshal(data, &timeline); err == nil {
				return &timeline, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.ExternalAPIError{API: "news", Message: "HTTP client not configured"}
	}

	feedURL := fmt.Sprintf(newsSearchFeedURL, url.QueryEscape(place))
	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch news feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "news",
			StatusCode: resp.StatusCode(),
			Message:    "news feed request failed",
		}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse news feed")
	}

	events := make([]domain.TimelineEvent, 0, len(feed.Items))
	for _, item := range feed.Items {
		snippet := textutil.CleanSnippet(item.Description)

		country := places.ExtractCountry(snippet)
		if country == "" {
			country = places.ExtractCountry(item.Title)
		}

		event := domain.TimelineEvent{
			Title:   item.Title,
			Snippet: snippet,
			Link:    item.Link,
			Country: country,
		}
		if item.PublishedParsed != nil {
			event.Published = *item.PublishedParsed
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Published.After(events[j].Published)
	})

	if len(events) > s.cfg.EventLimit {
		events = events[:s.cfg.EventLimit]
	}

	timeline := &domain.Timeline{
		Place:  place,
		Events: events,
	}

	if s.deps.Cache != nil && len(events) > 0 {
		if data, err := json.Marshal(timeline); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.CacheTTL)
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Built place timeline", map[string]interface{}{
			"place":  place,
			"events": len(events),
		})
	}

	return timeline, nil
}
