// ABOUTME: Timeline handler for the Huma API
// ABOUTME: Provides the HTTP endpoint for place event timelines

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/danooki/2509-PlaceTimelineBackEnd/api/dto/mappers"
	"github.com/danooki/2509-PlaceTimelineBackEnd/api/dto/responses"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

// TimelineService interface defines the methods needed from the timeline service
type TimelineService interface {
	BuildTimeline(ctx context.Context, place string) (*domain.Timeline, error)
}

// TimelineHandler handles place timeline HTTP requests
type TimelineHandler struct {
	timelineService TimelineService
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// RegisterRoutes registers the timeline routes
func (h *TimelineHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "placeTimeline",
		Method:      http.MethodGet,
		Path:        "/timeline",
		Summary:     "Build an event timeline for a place",
		Description: "Collects recent news events mentioning the place and returns them ordered newest first",
		Tags:        []string{"Places"},
	}, h.Timeline)
}

// TimelineInput defines the input for the Timeline operation
type TimelineInput struct {
	Place string `query:"place" required:"true" minLength:"1" maxLength:"100" doc:"Place name to build a timeline for"`
}

// TimelineOutput defines the output for the Timeline operation
type TimelineOutput struct {
	Body responses.TimelineResponse
}

// Timeline handles the GET /timeline endpoint
func (h *TimelineHandler) Timeline(ctx context.Context, input *TimelineInput) (*TimelineOutput, error) {
	timeline, err := h.timelineService.BuildTimeline(ctx, input.Place)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TimelineOutput{
		Body: responses.TimelineResponse{
			Success: true,
			Data:    mappers.ToTimelineData(timeline),
		},
	}, nil
}
