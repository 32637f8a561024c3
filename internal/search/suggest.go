package search

import (
	"strings"

	"github.com/agext/levenshtein"
	"github.com/khanglvm/toolbelt/internal/catalog"
)

// maxSuggestDistance bounds how far a suggestion may be from the input.
const maxSuggestDistance = 3

// Suggest returns the catalog title closest to name, for "did you mean" hints.
// The second return is false when nothing is close enough.
func Suggest(name string, records []catalog.ToolRecord) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, rec := range records {
		for _, candidate := range []string{rec.Title, slug(rec.Href)} {
			if candidate == "" {
				continue
			}
			d := levenshtein.Distance(needle, strings.ToLower(candidate), nil)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = rec.Title
			}
		}
	}

	if bestDist < 0 || bestDist > maxSuggestDistance {
		return "", false
	}
	return best, true
}

// slug returns the last path segment of href.
func slug(href string) string {
	href = strings.TrimRight(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}
