package hebrew

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// Normalize prepares text for matching using the profile's tables: combining
// marks (niqqud and cantillation, for the Hebrew profile) are stripped, runs
// of spaces and tabs collapse to a single space, and surrounding whitespace
// is trimmed. Line breaks are preserved so segmentation boundaries survive
// normalization.
//
// Normalization is for the matching side only; emitted snippets keep the
// original text, niqqud included.
func (p *Profile) Normalize(text string) string {
	stripped, _, err := transform.String(p.strip, text)
	if err != nil {
		stripped = text
	}
	return strings.TrimSpace(spaceRuns.ReplaceAllString(stripped, " "))
}

// Normalize applies the built-in Hebrew profile.
func Normalize(text string) string {
	return defaultProfile.Normalize(text)
}
