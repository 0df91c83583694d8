// ABOUTME: Place classifier deciding whether a search hit denotes a physical place
// ABOUTME: Keyword-ratio scoring with a negative-indicator veto and pattern fallback

package places

import (
	"strings"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/textutil"
)

const (
	// vetoConfidence is returned when a negative indicator short-circuits
	// classification.
	vetoConfidence = 0.1

	// patternFloor is the minimum confidence granted when a place pattern
	// matches but keyword density is low.
	patternFloor = 0.3

	// placeThreshold is the decision boundary for isPlace.
	placeThreshold = 0.2
)

// Classify decides whether the given title and snippet denote a physical
// place and, if so, what kind. Missing title or snippet yields a not-a-place
// result with zero confidence rather than an error.
func Classify(title, snippet string) domain.ClassificationResult {
	if title == "" || snippet == "" {
		return notAPlace(0)
	}

	combined := textutil.Normalize(title) + " " + textutil.Normalize(snippet)

	// The veto is absolute: a single non-place term dominates any amount of
	// positive keyword density.
	for _, term := range negativeIndicators {
		if strings.Contains(combined, term) {
			return notAPlace(vetoConfidence)
		}
	}

	best := 0.0
	bestType := domain.PlaceTypeNone
	for _, rule := range categoryRules {
		matched := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(combined, keyword) {
				matched++
			}
		}
		confidence := float64(matched) / float64(len(rule.Keywords)) * rule.Weight
		if confidence > best {
			best = confidence
			bestType = rule.Type
		}
	}

	// Keyword-ratio scoring under-detects short snippets. An unambiguous
	// place noun still earns a minimum confidence.
	if best < patternFloor {
		for _, pattern := range placePatterns {
			if pattern.MatchString(combined) {
				best = patternFloor
				if bestType == domain.PlaceTypeNone {
					bestType = domain.PlaceTypeLandmark
				}
				break
			}
		}
	}

	if best < placeThreshold {
		return notAPlace(best)
	}

	return domain.ClassificationResult{
		IsPlace:    true,
		PlaceType:  bestType,
		Confidence: best,
	}
}

func notAPlace(confidence float64) domain.ClassificationResult {
	return domain.ClassificationResult{
		IsPlace:    false,
		PlaceType:  domain.PlaceTypeNone,
		Confidence: confidence,
	}
}
