package ats

import (
	"sort"
	"strings"
)

// Match returns the vocabulary entries that appear anywhere in text,
// case-insensitive. Substring containment only, so "java" also matches
// inside "javascript". The result is sorted ascending; empty text yields
// an empty set.
func Match(text string, vocab []string) []string {
	matched := []string{}
	if text == "" {
		return matched
	}
	t := strings.ToLower(text)
	for _, skill := range vocab {
		if strings.Contains(t, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)
	return matched
}
