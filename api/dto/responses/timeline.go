// ABOUTME: Response DTOs for the place timeline endpoint
// ABOUTME: Provides event payload shapes with publication metadata

package responses

import "time"

// TimelineEventResponse represents a single dated event
type TimelineEventResponse struct {
	Title     string     `json:"title" doc:"Event headline"`
	Snippet   string     `json:"snippet,omitempty" doc:"Cleaned plain-text summary"`
	Link      string     `json:"link,omitempty" doc:"Link to the full story"`
	Country   string     `json:"country,omitempty" doc:"Extracted country name, empty when unknown"`
	Published *time.Time `json:"published,omitempty" doc:"Publication time"`
}

// TimelineData wraps the event list for a place
type TimelineData struct {
	Place  string                  `json:"place" doc:"The place the timeline was built for"`
	Events []TimelineEventResponse `json:"events" doc:"Events ordered newest first"`
}

// TimelineResponse is the envelope for the timeline endpoint
type TimelineResponse struct {
	Success bool         `json:"success" doc:"Whether the request succeeded"`
	Data    TimelineData `json:"data"`
}
