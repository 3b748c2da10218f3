package retrieval

import "strings"

// Score counts how many of the keywords occur at least once as an exact
// substring of the normalized segment. Each keyword contributes at most one
// point no matter how often it appears. A score of zero means the segment is
// not a match candidate.
func Score(normalizedSegment string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(normalizedSegment, kw) {
			score++
		}
	}
	return score
}
