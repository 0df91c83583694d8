// ABOUTME: Mappers converting domain models to API response DTOs
// ABOUTME: Keeps JSON shaping concerns out of the core packages

package mappers

import (
	"github.com/danooki/2509-PlaceTimelineBackEnd/api/dto/responses"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

// ToSuggestionResponse converts a domain suggestion to its response DTO.
func ToSuggestionResponse(s domain.Suggestion, accent *domain.RGBColor) responses.SuggestionResponse {
	resp := responses.SuggestionResponse{
		Title:           s.Title,
		Snippet:         s.Snippet,
		Confidence:      s.Confidence,
		PlaceType:       string(s.PlaceType),
		PlaceConfidence: s.PlaceConfidence,
		Country:         s.Country,
		Thumbnail:       s.Thumbnail,
		Size:            s.Size,
	}

	if !s.Timestamp.IsZero() {
		ts := s.Timestamp
		resp.Timestamp = &ts
	}

	if accent != nil {
		resp.AccentColor = &responses.RGBColorResponse{
			R: accent.R,
			G: accent.G,
			B: accent.B,
		}
	}

	return resp
}

// ToSuggestionResponses converts a ranked suggestion list, attaching accent
// colors keyed by thumbnail URL.
func ToSuggestionResponses(suggestions []domain.Suggestion, accents map[string]*domain.RGBColor) []responses.SuggestionResponse {
	result := make([]responses.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		var accent *domain.RGBColor
		if accents != nil && s.Thumbnail != "" {
			accent = accents[s.Thumbnail]
		}
		result = append(result, ToSuggestionResponse(s, accent))
	}
	return result
}

// ToTimelineData converts a domain timeline to its response DTO.
func ToTimelineData(t *domain.Timeline) responses.TimelineData {
	events := make([]responses.TimelineEventResponse, 0, len(t.Events))
	for _, e := range t.Events {
		event := responses.TimelineEventResponse{
			Title:   e.Title,
			Snippet: e.Snippet,
			Link:    e.Link,
			Country: e.Country,
		}
		if !e.Published.IsZero() {
			published := e.Published
			event.Published = &published
		}
		events = append(events, event)
	}

	return responses.TimelineData{
		Place:  t.Place,
		Events: events,
	}
}
