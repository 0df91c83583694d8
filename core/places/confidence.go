// ABOUTME: Confidence scoring combining query/title/snippet similarity
// ABOUTME: Tiered base confidence composed with the place classifier's output

package places

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/textutil"
)

const (
	titleWeight   = 0.7
	snippetWeight = 0.3

	// Queries shorter than three characters carry little signal.
	shortQueryLength  = 3
	shortQueryPenalty = 0.5

	placeBoostFactor = 0.2
)

// BaseConfidence scores how well a candidate's title and snippet match the
// user query. Tiers are evaluated in order on normalized text; the first
// match wins. The result is clamped to [0,1].
func BaseConfidence(query, title, snippet string) float64 {
	normQuery := textutil.Normalize(query)
	normTitle := textutil.Normalize(title)
	normSnippet := textutil.Normalize(snippet)

	if normQuery == "" || normTitle == "" {
		return 0
	}

	var score float64
	switch {
	case normTitle == normQuery:
		score = 1.0
	case strings.Contains(normTitle, normQuery):
		score = 0.9
	case strings.Contains(normQuery, normTitle):
		score = 0.8
	default:
		score = overlapScore(normQuery, normTitle, normSnippet)
	}

	if utf8.RuneCountInString(query) < shortQueryLength {
		score *= shortQueryPenalty
	}

	return clamp(score)
}

// overlapScore is the tier-4 word-overlap fallback. Query words shorter
// than three characters never count as matches.
func overlapScore(normQuery, normTitle, normSnippet string) float64 {
	queryWords := strings.Fields(normQuery)
	if len(queryWords) == 0 {
		return 0
	}
	titleWords := strings.Fields(normTitle)

	titleMatches := 0
	snippetMatches := 0
	for _, qw := range queryWords {
		if utf8.RuneCountInString(qw) <= 2 {
			continue
		}
		for _, tw := range titleWords {
			if strings.Contains(tw, qw) || strings.Contains(qw, tw) {
				titleMatches++
				break
			}
		}
		if strings.Contains(normSnippet, qw) {
			snippetMatches++
		}
	}

	total := float64(len(queryWords))
	return float64(titleMatches)/total*titleWeight + float64(snippetMatches)/total*snippetWeight
}

// PlaceConfidence is the place-aware composition of base confidence and the
// classifier's output. Candidates the classifier rejects score zero outright.
func PlaceConfidence(query, title, snippet string) float64 {
	return composeConfidence(Classify(title, snippet), query, title, snippet)
}

// composeConfidence lets callers that already classified a candidate avoid
// running the classifier twice.
func composeConfidence(cls domain.ClassificationResult, query, title, snippet string) float64 {
	if !cls.IsPlace {
		return 0
	}

	base := BaseConfidence(query, title, snippet)
	boost := cls.Confidence * placeBoostFactor
	bonus := typeBonuses[cls.PlaceType]

	return math.Min(base+boost+bonus, 1.0)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
