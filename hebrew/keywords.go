package hebrew

import "unicode/utf8"

// Common Hebrew function words, stored in the form tokens take after
// normalization and separator splitting.
var defaultStopWords = []string{
	"של", "על", "אל", "עם", "אם", "או", "גם", "וכן",
	"כל", "ללא", "מבלי", "לא", "כן", "יכול", "יכולה", "יכולים", "יהיה", "תהיה",
	"לפי", "לפיה", "בהתאם", "לכך", "כמו", "וכו", "וכו׳", "וכו’",
	"הוא", "היא", "הם", "הן", "שלו", "שלה", "שלהם", "להיות", "לה", "לו", "אליו", "אליה",
	"זה", "זאת", "אלה", "אשר", "כי", "כך",
}

// ExtractKeywords derives the keyword set for a query: the query is
// normalized, split on the profile's separators, and tokens shorter than the
// minimum keyword length or present in the stop-word set are dropped.
// Duplicates collapse to the first occurrence, so the result preserves
// first-seen order. An empty result means the query cannot match anything.
func (p *Profile) ExtractKeywords(query string) []string {
	tokens := p.separators.Split(p.Normalize(query), -1)

	seen := make(map[string]bool, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || utf8.RuneCountInString(tok) < p.minKeywordLen {
			continue
		}
		if p.stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// ExtractKeywords applies the built-in Hebrew profile.
func ExtractKeywords(query string) []string {
	return defaultProfile.ExtractKeywords(query)
}
