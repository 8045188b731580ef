package ai

import (
	"fmt"
	"strings"
)

// ListingRequest holds the structured inputs for listing composition.
type ListingRequest struct {
	Category    string   `json:"category" validate:"required,min=1"`
	ProductName string   `json:"productName"`
	Features    []string `json:"features"`
	SEOKeywords []string `json:"seoKeywords"`
}

// ListingResult is the composed Amazon listing copy.
type ListingResult struct {
	Title       string   `json:"title"`
	Bullets     []string `json:"bullets"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ComposeListing deterministically assembles a listing title, bullet list,
// description and recommended keyword set from the structured inputs.
// Identical inputs always produce identical output.
func ComposeListing(req ListingRequest) ListingResult {
	baseName := req.ProductName
	if baseName == "" {
		baseName = "Product"
	}

	topKeywords := firstN(req.SEOKeywords, 3)
	for i, k := range topKeywords {
		topKeywords[i] = titleCase(k)
	}

	segments := []string{baseName}
	if len(topKeywords) > 0 {
		segments = append(segments, "– "+strings.Join(topKeywords, " / "))
	}
	segments = append(segments, "| "+req.Category)
	title := strings.Join(segments, " ")

	bullets := make([]string, 0, 5)
	for _, f := range firstN(req.Features, 5) {
		bullets = append(bullets, "• "+f)
	}

	description := fmt.Sprintf(
		"%s in %s category. Designed for shoppers looking for %s. Key benefits: %s.",
		baseName,
		req.Category,
		strings.Join(firstN(req.SEOKeywords, 5), ", "),
		strings.Join(req.Features, ", "),
	)

	return ListingResult{
		Title:       title,
		Bullets:     bullets,
		Description: description,
		Keywords:    recommendedKeywords(req.SEOKeywords, req.Features),
	}
}

// recommendedKeywords unions the SEO keywords (verbatim) with the lowercased
// tokens of every feature, deduplicated in first-seen order and capped at 20.
func recommendedKeywords(seoKeywords, features []string) []string {
	seen := make(map[string]bool)
	keywords := []string{}
	add := func(k string) {
		if !seen[k] && len(keywords) < 20 {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	for _, k := range seoKeywords {
		add(k)
	}
	for _, f := range features {
		for _, tok := range strings.Fields(strings.ToLower(f)) {
			add(tok)
		}
	}
	return keywords
}

// titleCase capitalizes the first letter of each whitespace-delimited word
// and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
