// ABOUTME: Response DTOs for the place suggestion endpoint
// ABOUTME: Provides the success envelope and suggestion payload shapes

package responses

import "time"

// RGBColorResponse represents an accent color in API responses
type RGBColorResponse struct {
	R uint8 `json:"r" doc:"Red channel"`
	G uint8 `json:"g" doc:"Green channel"`
	B uint8 `json:"b" doc:"Blue channel"`
}

// SuggestionResponse represents a single ranked place suggestion
type SuggestionResponse struct {
	Title           string            `json:"title" doc:"Article title of the candidate"`
	Snippet         string            `json:"snippet" doc:"Cleaned plain-text snippet"`
	Confidence      float64           `json:"confidence" doc:"Place-aware relevance score in [0,1]"`
	PlaceType       string            `json:"place_type" doc:"Classified place type (building, city, landmark, area or none)"`
	PlaceConfidence float64           `json:"place_confidence" doc:"Classifier confidence for the place type"`
	Country         string            `json:"country,omitempty" doc:"Extracted country name, empty when unknown"`
	Thumbnail       string            `json:"thumbnail,omitempty" doc:"Thumbnail image URL"`
	AccentColor     *RGBColorResponse `json:"accent_color,omitempty" doc:"Prominent color of the thumbnail"`
	Size            int               `json:"size,omitempty" doc:"Article size in bytes"`
	Timestamp       *time.Time        `json:"timestamp,omitempty" doc:"Last edit timestamp of the article"`
}

// SuggestData wraps the suggestion list
type SuggestData struct {
	Suggestions []SuggestionResponse `json:"suggestions" doc:"Ranked place suggestions, best first"`
}

// SuggestResponse is the envelope for the suggest endpoint
type SuggestResponse struct {
	Success bool        `json:"success" doc:"Whether the request succeeded"`
	Data    SuggestData `json:"data"`
}
