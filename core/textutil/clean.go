// ABOUTME: Snippet cleaning for raw search hit text
// ABOUTME: Strips HTML-like tags and entities and collapses whitespace

package textutil

import (
	"regexp"
	"strings"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// CleanSnippet strips markup from a raw snippet. Tags are removed, HTML
// entities are replaced with a single space, and whitespace runs are
// collapsed. Returns "" for empty input.
func CleanSnippet(snippet string) string {
	if snippet == "" {
		return ""
	}

	s := tagPattern.ReplaceAllString(snippet, "")
	s = entityPattern.ReplaceAllString(s, " ")
	s = spaceRuns.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
