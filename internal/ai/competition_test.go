package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCompetition(t *testing.T) {
	testCases := []struct {
		keyword string
		want    string
	}{
		{"earbuds", "high"},
		{"wireless earbuds", "medium"},
		{"wireless bluetooth earbuds", "low"},
		{"best wireless bluetooth earbuds 2024", "low"},
		{"  spaced   phrase  ", "medium"},
	}

	for _, tc := range testCases {
		t.Run(tc.keyword, func(t *testing.T) {
			got := ClassifyCompetition([]string{tc.keyword})
			require.Len(t, got, 1)
			assert.Equal(t, tc.keyword, got[0].Keyword)
			assert.Equal(t, tc.want, got[0].Competition)
		})
	}
}

func TestClassifyCompetitionPreservesOrderAndCaps(t *testing.T) {
	keywords := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		keywords = append(keywords, fmt.Sprintf("keyword%02d", i))
	}

	got := ClassifyCompetition(keywords)
	require.Len(t, got, 15)
	for i, kc := range got {
		assert.Equal(t, keywords[i], kc.Keyword)
	}
}
