package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Same", "same", 0}, // normalization lowercases
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevenshteinDistance(tt.s1, tt.s2), "%q vs %q", tt.s1, tt.s2)
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("climate", "Climate summit opens today", 2))
	assert.True(t, Match("climte", "climate summit", 2), "one typo within threshold")
	assert.True(t, Match("clim", "climate summit", 0), "prefix match")
	assert.False(t, Match("economy", "climate summit", 2))
}

func TestScoreOrdersTitleAboveSummary(t *testing.T) {
	titleHit := Score("climate", "Climate summit opens", "delegates arrive")
	summaryHit := Score("climate", "Summit opens", "climate delegates arrive")
	miss := Score("climate", "Weather report", "sunny all week")

	assert.Greater(t, titleHit, summaryHit)
	assert.Greater(t, summaryHit, miss)
	assert.Equal(t, 0.0, miss)
}

func TestMatchArticleBodySnippet(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	body := "climate " + string(long)

	assert.True(t, MatchArticle("climate", "headline", "summary", body))
	// Past the 500-char snippet the body is not searched
	assert.False(t, MatchArticle("climate", "headline", "summary", string(long)+" climate"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  A   b\tC "))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("climate summit opens", "summit"))
	assert.False(t, ContainsWord("climate summit opens", "sum"))
}
