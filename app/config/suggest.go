package config

import (
	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// jwWeight and levWeight blend Jaro-Winkler and Levenshtein similarity
// when scoring a requested language code against the available ones.
const (
	jwWeight  = 0.7
	levWeight = 0.3
)

// SuggestLanguage returns the code in available most similar to
// requested, for surfacing "did you mean" text alongside a missing
// language profile error. It returns "" if available is empty.
func SuggestLanguage(requested string, available []string) string {
	best := ""
	bestScore := -1.0
	for _, code := range available {
		score := similarity(requested, code)
		if score > bestScore {
			bestScore = score
			best = code
		}
	}
	return best
}

func similarity(a, b string) float64 {
	jw := smetrics.JaroWinkler(a, b, 0.7, 4)
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	lev := 1.0
	if maxLen > 0 {
		lev = 1.0 - float64(dist)/float64(maxLen)
	}
	return jwWeight*jw + levWeight*lev
}
