// ABOUTME: Place domain models for the suggestion pipeline
// ABOUTME: Defines search candidates, classification results and enriched suggestions

package domain

import "time"

// PlaceType is the categorical output of the place classifier.
type PlaceType string

const (
	PlaceTypeBuilding PlaceType = "building"
	PlaceTypeCity     PlaceType = "city"
	PlaceTypeLandmark PlaceType = "landmark"
	PlaceTypeArea     PlaceType = "area"
	PlaceTypeNone     PlaceType = "none"
)

// SearchCandidate is a raw full-text search hit before scoring and enrichment.
// Candidates are immutable once received from the search collaborator.
type SearchCandidate struct {
	// Title is the hit's title as returned by the search backend
	Title string

	// Snippet is the raw snippet, possibly containing markup
	Snippet string

	// Size is the source document size in bytes
	Size int

	// Timestamp is the last-modified time of the source document,
	// zero when the search backend doesn't supply one
	Timestamp time.Time
}

// ClassificationResult is the output of the place classifier.
// PlaceType is PlaceTypeNone exactly when IsPlace is false.
type ClassificationResult struct {
	IsPlace    bool
	PlaceType  PlaceType
	Confidence float64
}

// Suggestion is an enriched, scored candidate returned to the caller.
// A suggestion is never mutated after construction.
type Suggestion struct {
	// Title is the candidate title
	Title string

	// Snippet is the cleaned snippet text
	Snippet string

	// Confidence is the place-aware match confidence in [0,1]
	Confidence float64

	// PlaceType is the classifier's categorical output
	PlaceType PlaceType

	// PlaceConfidence is the classifier's own confidence in [0,1]
	PlaceConfidence float64

	// Country is the extracted country name, empty when unknown
	Country string

	// Thumbnail is the enriched thumbnail URL, empty when unavailable
	Thumbnail string

	// Size is carried over from the candidate
	Size int

	// Timestamp is carried over from the candidate
	Timestamp time.Time
}

// PlaceEnrichment is the result of the per-title enrichment collaborator.
type PlaceEnrichment struct {
	// Thumbnail is a representative image URL for the place
	Thumbnail string

	// Country is the country name when the collaborator supplies one
	Country string

	// Extract is long-form summary text usable for country extraction
	Extract string
}
