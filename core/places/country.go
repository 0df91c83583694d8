// ABOUTME: Country extraction from unstructured summary prose
// ABOUTME: Pattern-based capture of capitalized spans checked against the whitelist

package places

import (
	"regexp"
	"strings"
)

// countryPatterns capture a capitalized span following a locating
// preposition and ending at a comma or period. Spans may contain
// "City, Country" sequences; comma-separated segments are tested
// individually in text order. Patterns are applied in declared order.
var countryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bin ((?:[A-Z][a-z]+[ ,] ?)*[A-Z][a-z]+)[,.]`),
	regexp.MustCompile(`\bof ((?:[A-Z][a-z]+[ ,] ?)*[A-Z][a-z]+)[,.]`),
	regexp.MustCompile(`\blocated in ((?:[A-Z][a-z]+[ ,] ?)*[A-Z][a-z]+)[,.]`),
}

// ExtractCountry scans summary prose for a whitelisted country name and
// returns the first one found, or "" when no match qualifies.
func ExtractCountry(summary string) string {
	if summary == "" {
		return ""
	}

	for _, pattern := range countryPatterns {
		for _, match := range pattern.FindAllStringSubmatch(summary, -1) {
			span := strings.TrimSpace(match[1])
			if isWhitelistedCountry(span) {
				return span
			}
			// "located in Paris, France." captures "Paris, France"
			for _, segment := range strings.Split(span, ",") {
				segment = strings.TrimSpace(segment)
				if isWhitelistedCountry(segment) {
					return segment
				}
			}
		}
	}

	return ""
}
