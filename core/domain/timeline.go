// ABOUTME: Timeline domain models for place news timelines
// ABOUTME: Defines dated events assembled from news feeds about a place

package domain

import "time"

// TimelineEvent is a single dated entry in a place timeline.
type TimelineEvent struct {
	// Title is the event headline
	Title string

	// Snippet is the cleaned event summary
	Snippet string

	// Link is the source article URL
	Link string

	// Country is the country extracted from the summary, empty when unknown
	Country string

	// Published is the event publication time
	Published time.Time
}

// Timeline is an ordered collection of events for a place, newest first.
type Timeline struct {
	// Place is the place name the timeline was built for
	Place string

	// Events are the timeline entries, newest first
	Events []TimelineEvent
}
