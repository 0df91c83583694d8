package timeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	coreerrors "github.com/danooki/2509-PlaceTimelineBackEnd/core/errors"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int        { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser    { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error { return nil }

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"eiffel tower" - Google News</title>
<item>
<title>Eiffel Tower reopens after strike</title>
<link>https://news.example.com/reopen</link>
<pubDate>Tue, 10 Jun 2025 10:00:00 +0000</pubDate>
<description>&lt;a href="https://news.example.com/reopen"&gt;The landmark located in Paris, France. reopened today&lt;/a&gt;</description>
</item>
<item>
<title>Light show in France, visitors delighted.</title>
<link>https://news.example.com/lights</link>
<pubDate>Fri, 20 Jun 2025 08:30:00 +0000</pubDate>
<description>&lt;b&gt;A new summer light show&lt;/b&gt;</description>
</item>
</channel>
</rss>`

func feedService(body string) *Service {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	return NewService(interfaces.Dependencies{HTTPClient: client}, Config{})
}

func TestNewService_AppliesDefaults(t *testing.T) {
	service := NewService(interfaces.Dependencies{}, Config{})

	if service.cfg.EventLimit != 20 {
		t.Errorf("EventLimit = %d, want default 20", service.cfg.EventLimit)
	}
	if service.cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", service.cfg.CacheTTL)
	}
}

func TestBuildTimeline_ValidatesPlace(t *testing.T) {
	service := NewService(interfaces.Dependencies{}, Config{})

	if _, err := service.BuildTimeline(context.Background(), ""); !coreerrors.IsValidation(err) {
		t.Errorf("empty place: error = %v, want ValidationError", err)
	}
	if _, err := service.BuildTimeline(context.Background(), strings.Repeat("a", 101)); !coreerrors.IsValidation(err) {
		t.Errorf("long place: error = %v, want ValidationError", err)
	}
}

func TestBuildTimeline_ParsesAndSortsNewestFirst(t *testing.T) {
	timeline, err := feedService(sampleFeed).BuildTimeline(context.Background(), "eiffel tower")

	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if timeline.Place != "eiffel tower" {
		t.Errorf("Place = %q, want eiffel tower", timeline.Place)
	}
	if len(timeline.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(timeline.Events))
	}
	if timeline.Events[0].Title != "Light show in France, visitors delighted." {
		t.Errorf("first event = %q, want the newer item first", timeline.Events[0].Title)
	}
	if !timeline.Events[0].Published.After(timeline.Events[1].Published) {
		t.Error("events not sorted newest first")
	}
}

func TestBuildTimeline_CleansSnippetsAndExtractsCountry(t *testing.T) {
	timeline, err := feedService(sampleFeed).BuildTimeline(context.Background(), "eiffel tower")

	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}

	reopen := timeline.Events[1]
	if strings.Contains(reopen.Snippet, "<") || strings.Contains(reopen.Snippet, "&") {
		t.Errorf("snippet not cleaned: %q", reopen.Snippet)
	}
	if reopen.Country != "France" {
		t.Errorf("Country = %q, want France from snippet", reopen.Country)
	}

	// Country falls back to the title when the snippet has none
	lights := timeline.Events[0]
	if lights.Country != "France" {
		t.Errorf("Country = %q, want France from title fallback", lights.Country)
	}
}

func TestBuildTimeline_TruncatesToEventLimit(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 5; i++ {
		items.WriteString(`<item><title>Event</title><pubDate>Tue, 10 Jun 2025 10:00:00 +0000</pubDate></item>`)
	}
	feed := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` + items.String() + `</channel></rss>`

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: feed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, Config{EventLimit: 3})

	timeline, err := service.BuildTimeline(context.Background(), "paris")

	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if len(timeline.Events) != 3 {
		t.Errorf("got %d events, want 3", len(timeline.Events))
	}
}

func TestBuildTimeline_ChecksCacheFirst(t *testing.T) {
	cached := domain.Timeline{
		Place:  "paris",
		Events: []domain.TimelineEvent{{Title: "cached event"}},
	}
	cachedJSON, _ := json.Marshal(cached)
	fetchCalled := false

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			if key != "timeline:paris" {
				t.Errorf("cache key = %q, want timeline:paris", key)
			}
			return cachedJSON, nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			fetchCalled = true
			return nil, errors.New("should not fetch")
		},
	}
	service := NewService(interfaces.Dependencies{Cache: cache, HTTPClient: client}, Config{})

	timeline, err := service.BuildTimeline(context.Background(), "paris")

	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if len(timeline.Events) != 1 || timeline.Events[0].Title != "cached event" {
		t.Errorf("timeline = %+v, want cached timeline", timeline)
	}
	if fetchCalled {
		t.Error("feed should not be fetched on cache hit")
	}
}

func TestBuildTimeline_CachesResult(t *testing.T) {
	var capturedTTL time.Duration
	cacheCalled := false

	cache := &mockCache{
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			cacheCalled = true
			capturedTTL = ttl
			return nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{Cache: cache, HTTPClient: client}, Config{})

	if _, err := service.BuildTimeline(context.Background(), "paris"); err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if !cacheCalled {
		t.Error("BuildTimeline should cache the assembled timeline")
	}
	if capturedTTL != time.Hour {
		t.Errorf("cache TTL = %v, want 1h", capturedTTL)
	}
}

func TestBuildTimeline_UpstreamStatusError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, Config{})

	_, err := service.BuildTimeline(context.Background(), "paris")

	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error = %v, want ExternalAPIError", err)
	}
}

func TestBuildTimeline_FetchErrorPropagates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("network down")
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, Config{})

	if _, err := service.BuildTimeline(context.Background(), "paris"); err == nil {
		t.Error("BuildTimeline should propagate fetch errors")
	}
}

func TestBuildTimeline_NoHTTPClient(t *testing.T) {
	service := NewService(interfaces.Dependencies{}, Config{})

	if _, err := service.BuildTimeline(context.Background(), "paris"); err == nil {
		t.Error("BuildTimeline should fail without an HTTP client")
	}
}

func TestBuildTimeline_QueryEscapesPlace(t *testing.T) {
	var capturedURL string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			capturedURL = url
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, Config{})

	if _, err := service.BuildTimeline(context.Background(), "eiffel tower"); err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if !strings.Contains(capturedURL, "q=eiffel+tower") {
		t.Errorf("feed URL = %q, place not query-escaped", capturedURL)
	}
}
