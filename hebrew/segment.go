package hebrew

import (
	"regexp"
	"strings"
)

var (
	paragraphBreaks = regexp.MustCompile(`(?:\r?\n){2,}`)
	lineBreaks      = regexp.MustCompile(`\r?\n`)
	sentenceBreaks  = regexp.MustCompile(`[.!?]\s+|\n+`)
)

// SplitParagraphs splits document content into paragraph units. Blank-line
// boundaries (two or more consecutive line breaks) separate paragraphs; when
// that yields at most one unit, single line breaks are used instead. Units
// are trimmed and empty units dropped.
func SplitParagraphs(text string) []string {
	parts := splitAndTrim(paragraphBreaks, text)
	if len(parts) <= 1 {
		parts = splitAndTrim(lineBreaks, text)
	}
	return parts
}

// SplitSentences splits text into rough sentence units: after sentence-terminal
// punctuation followed by whitespace, or on any newline run. The terminal
// punctuation stays with its sentence. When no boundary is found the whole
// trimmed text is returned as a single unit.
func SplitSentences(text string) []string {
	var out []string
	prev := 0
	for _, loc := range sentenceBreaks.FindAllStringIndex(text, -1) {
		end := loc[0]
		switch text[loc[0]] {
		case '.', '!', '?':
			end = loc[0] + 1
		}
		if piece := strings.TrimSpace(text[prev:end]); piece != "" {
			out = append(out, piece)
		}
		prev = loc[1]
	}
	if piece := strings.TrimSpace(text[prev:]); piece != "" {
		out = append(out, piece)
	}
	if len(out) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return out
}

func splitAndTrim(re *regexp.Regexp, text string) []string {
	raw := re.Split(text, -1)
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
