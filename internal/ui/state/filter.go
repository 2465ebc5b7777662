package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterNames returns the names matching the query, preserving the input
// order. Fuzzy matching is tried first; when it yields nothing a plain
// case-insensitive substring match is used as a fallback.
func FilterNames(names []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return names
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]string, 0, len(matches))
		for i, name := range names {
			if _, ok := matches[i]; ok {
				filtered = append(filtered, name)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
