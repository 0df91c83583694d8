// ABOUTME: Text normalization for query/title/snippet comparison
// ABOUTME: Lower-cases, strips diacritics and removes non-word characters

package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Combining diacritical marks block, left behind by NFD decomposition
	combiningMarks = regexp.MustCompile(`[\x{0300}-\x{036F}]`)
	nonWordChars   = regexp.MustCompile(`[^\w\s]`)
)

// Normalize canonicalizes text for comparison. The result is lower-case,
// diacritic-free and contains only word characters and whitespace.
// Normalize is idempotent and returns "" for empty input.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = norm.NFD.String(s)
	s = combiningMarks.ReplaceAllString(s, "")
	s = nonWordChars.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}
