package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "hebrew content",
			content:  "המטופל מתקשה בהליכה ומבקש הכרה בנכות כללית",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNoMatchSection(t *testing.T) {
	s := NoMatchSection()

	if s.SourceID != SourceNA {
		t.Errorf("NoMatchSection() SourceID = %q, want %q", s.SourceID, SourceNA)
	}
	if s.Text != NoMatchText {
		t.Errorf("NoMatchSection() Text = %q, want %q", s.Text, NoMatchText)
	}
	if s.SectionRef != "" {
		t.Errorf("NoMatchSection() SectionRef = %q, want empty", s.SectionRef)
	}
	if !s.IsSentinel() {
		t.Error("NoMatchSection() IsSentinel() = false, want true")
	}
}

func TestRetrievedSection_IsSentinel(t *testing.T) {
	real := RetrievedSection{SourceID: "criteria_1", Text: "סעיף 1"}
	if real.IsSentinel() {
		t.Error("IsSentinel() = true for a real section, want false")
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Category(%q).Valid() = false, want true", c)
		}
	}

	if Category("לא מסווג").Valid() {
		t.Error("Valid() = true for the fallback label, want false")
	}

	if Category("").Valid() {
		t.Error("Valid() = true for empty category, want false")
	}
}

func TestCategories_StableOrder(t *testing.T) {
	first := Categories()
	second := Categories()

	if len(first) != len(second) {
		t.Fatalf("Categories() length changed between calls: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Categories()[%d] = %q then %q, want stable order", i, first[i], second[i])
		}
	}
}
