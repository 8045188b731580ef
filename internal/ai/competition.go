package ai

import "strings"

// KeywordCompetition pairs a keyword phrase with its competition level.
type KeywordCompetition struct {
	Keyword     string `json:"keyword"`
	Competition string `json:"competition"`
}

// ClassifyCompetition maps each phrase to a competition level derived from
// its word count: three or more words is "low", exactly two is "medium",
// a single word is "high". Only the first 15 phrases are considered; input
// order is preserved.
func ClassifyCompetition(keywords []string) []KeywordCompetition {
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	analysis := make([]KeywordCompetition, 0, len(keywords))
	for _, k := range keywords {
		n := len(strings.Fields(k))
		level := "high"
		switch {
		case n >= 3:
			level = "low"
		case n == 2:
			level = "medium"
		}
		analysis = append(analysis, KeywordCompetition{Keyword: k, Competition: level})
	}
	return analysis
}
