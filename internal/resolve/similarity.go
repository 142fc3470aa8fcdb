package resolve

import "strings"

// SuggestThreshold is the minimum similarity for a "did you mean" hint.
const SuggestThreshold = 0.5

// Distance returns the Levenshtein edit distance between a and b, counted in
// runes so localized names compare sensibly.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns 1 - distance/maxLen, ignoring case.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

// Suggest returns the candidate most similar to target, if it reaches
// threshold. Ties keep the earliest candidate.
func Suggest(target string, candidates []string, threshold float64) (string, bool) {
	var (
		best      string
		bestScore float64
	)
	for _, c := range candidates {
		if score := Similarity(target, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore >= threshold && best != "" {
		return best, true
	}
	return "", false
}
