package places

import (
	"context"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
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

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockSearcher is a mock implementation of the PlaceSearcher interface
type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.SearchCandidate, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit int) ([]domain.SearchCandidate, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

// mockEnricher is a mock implementation of the PlaceEnricher interface
type mockEnricher struct {
	enrichFunc func(ctx context.Context, title string) (*domain.PlaceEnrichment, error)
}

func (m *mockEnricher) Enrich(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
	if m.enrichFunc != nil {
		return m.enrichFunc(ctx, title)
	}
	return nil, nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
