// Package ai implements the deterministic heuristics behind the /api/ai
// endpoints: keyword extraction, competition classification, listing
// composition and opportunity scoring. Nothing here does I/O.
package ai

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 15

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// stopWords are never emitted as keywords.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "this": true, "that": true, "from": true, "your": true,
	"have": true, "but": true, "not": true, "all": true, "any": true,
}

// ExtractKeywords tokenizes the title and optional description into a ranked,
// deduplicated keyword set: lowercase tokens longer than two characters that
// are not stop words, sorted by descending length then ascending
// lexicographic order, capped at 15 entries.
func ExtractKeywords(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	text = nonAlnumPattern.ReplaceAllString(text, " ")

	seen := make(map[string]bool)
	words := []string{}
	for _, w := range strings.Fields(text) {
		if len(w) <= 2 || stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}
