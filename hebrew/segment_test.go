package hebrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "blank line boundary",
			input: "פסקה ראשונה.\n\nפסקה שניה.",
			want:  []string{"פסקה ראשונה.", "פסקה שניה."},
		},
		{
			name:  "crlf blank lines",
			input: "ראשון\r\n\r\nשני",
			want:  []string{"ראשון", "שני"},
		},
		{
			name:  "many blank lines collapse to one boundary",
			input: "ראשון\n\n\n\nשני",
			want:  []string{"ראשון", "שני"},
		},
		{
			name:  "no blank lines falls back to single line breaks",
			input: "שורה אחת\nשורה שתיים\nשורה שלוש",
			want:  []string{"שורה אחת", "שורה שתיים", "שורה שלוש"},
		},
		{
			name:  "single block",
			input: "טקסט אחד ללא שבירות",
			want:  []string{"טקסט אחד ללא שבירות"},
		},
		{
			name:  "leading and trailing breaks dropped",
			input: "\n\nראשון\n\nשני\n\n",
			want:  []string{"ראשון", "שני"},
		},
		{
			name:  "units are trimmed",
			input: "  ראשון  \n\n  שני  ",
			want:  []string{"ראשון", "שני"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.input))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminal punctuation boundaries",
			input: "המשפט הראשון. המשפט השני! השלישי?",
			want:  []string{"המשפט הראשון.", "המשפט השני!", "השלישי?"},
		},
		{
			name:  "newline boundary without punctuation",
			input: "שורה אחת\nשורה שתיים",
			want:  []string{"שורה אחת", "שורה שתיים"},
		},
		{
			name:  "punctuation followed by newline",
			input: "משפט ראשון.\nמשפט שני.",
			want:  []string{"משפט ראשון.", "משפט שני."},
		},
		{
			name:  "no boundary returns whole text",
			input: "טקסט ללא סוף משפט",
			want:  []string{"טקסט ללא סוף משפט"},
		},
		{
			name:  "decimal point is not a boundary",
			input: "שיעור של 3.5 אחוז נקבע",
			want:  []string{"שיעור של 3.5 אחוז נקבע"},
		},
		{
			name:  "trailing punctuation keeps one unit",
			input: "משפט יחיד.",
			want:  []string{"משפט יחיד."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}
