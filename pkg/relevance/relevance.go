package relevance

import "strings"

// LevenshteinDistance calculates the edit distance between two strings
// This measures how many single-character edits (insertions, deletions, or substitutions)
// are required to change one string into another
func LevenshteinDistance(s1, s2 string) int {
	s1 = Normalize(s1)
	s2 = Normalize(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match checks if query fuzzy-matches text within a given threshold
// threshold is the maximum allowed edit distance
func Match(query, text string, threshold int) bool {
	query = Normalize(query)
	text = Normalize(text)

	if strings.Contains(text, query) {
		return true
	}

	words := strings.Fields(text)
	for _, word := range words {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Score rates how relevant an article is to a query. Higher score = more
// relevant. Title matches outweigh summary matches.
func Score(query, title, summary string) float64 {
	query = Normalize(query)
	score := 0.0

	titleNorm := Normalize(title)
	if strings.Contains(titleNorm, query) {
		score += 100.0
		// Bonus for exact word match
		if ContainsWord(titleNorm, query) {
			score += 50.0
		}
	} else {
		titleWords := strings.Fields(titleNorm)
		for _, word := range titleWords {
			dist := LevenshteinDistance(query, word)
			if dist <= 2 {
				score += 50.0 - float64(dist)*15
			}
			if strings.HasPrefix(word, query) {
				score += 40.0
			}
		}
	}

	summaryNorm := Normalize(summary)
	if strings.Contains(summaryNorm, query) {
		score += 60.0
		if ContainsWord(summaryNorm, query) {
			score += 20.0
		}
	} else {
		summaryWords := strings.Fields(summaryNorm)
		for _, word := range summaryWords {
			dist := LevenshteinDistance(query, word)
			if dist <= 2 {
				score += 30.0 - float64(dist)*10
			}
		}
	}

	return score
}

// MatchArticle checks if an article matches the query across its text fields.
func MatchArticle(query, title, summary, content string) bool {
	// Typo tolerance threshold based on query length
	threshold := 2
	if len(query) <= 3 {
		threshold = 1
	} else if len(query) >= 8 {
		threshold = 3
	}

	if Match(query, title, threshold) {
		return true
	}
	if Match(query, summary, threshold) {
		return true
	}

	// Only the head of the body, for performance
	if len(content) > 0 {
		snippet := content
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		if Match(query, snippet, threshold) {
			return true
		}
	}

	return false
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// Normalize converts to lowercase and collapses whitespace
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ContainsWord checks if text contains query as a whole word
func ContainsWord(text, query string) bool {
	words := strings.Fields(text)
	for _, word := range words {
		if word == query {
			return true
		}
	}
	return false
}
