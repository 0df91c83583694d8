// ABOUTME: Suggest handler for the Huma API
// ABOUTME: Provides the HTTP endpoint for ranked place suggestions

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/danooki/2509-PlaceTimelineBackEnd/api/dto/mappers"
	"github.com/danooki/2509-PlaceTimelineBackEnd/api/dto/responses"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

// SuggestService interface defines the methods needed from the suggest service
type SuggestService interface {
	Suggest(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// SuggestHandler handles place suggestion HTTP requests
type SuggestHandler struct {
	suggestService SuggestService
	accentColors   interfaces.AccentColorService
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(suggestService SuggestService, accentColors interfaces.AccentColorService) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		accentColors:   accentColors,
	}
}

// RegisterRoutes registers the suggest routes
func (h *SuggestHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggestPlaces",
		Method:      http.MethodGet,
		Path:        "/suggest",
		Summary:     "Suggest places for a query",
		Description: "Searches for place candidates matching the query and returns them ranked by place-aware relevance",
		Tags:        []string{"Places"},
	}, h.Suggest)
}

// SuggestInput defines the input for the Suggest operation
type SuggestInput struct {
	Query string `query:"q" required:"true" minLength:"2" maxLength:"100" doc:"Free-text place query"`
}

// SuggestOutput defines the output for the Suggest operation
type SuggestOutput struct {
	Body responses.SuggestResponse
}

// Suggest handles the GET /suggest endpoint
func (h *SuggestHandler) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	suggestions, err := h.suggestService.Suggest(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	var accents map[string]*domain.RGBColor
	if h.accentColors != nil {
		thumbnails := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			if s.Thumbnail != "" {
				thumbnails = append(thumbnails, s.Thumbnail)
			}
		}
		if len(thumbnails) > 0 {
			accents = h.accentColors.ExtractAccentBatch(ctx, thumbnails)
		}
	}

	return &SuggestOutput{
		Body: responses.SuggestResponse{
			Success: true,
			Data: responses.SuggestData{
				Suggestions: mappers.ToSuggestionResponses(suggestions, accents),
			},
		},
	}, nil
}
