package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/zakaut/core"
)

func TestFormatSections(t *testing.T) {
	sections := []core.RetrievedSection{
		{SourceID: "חוק הביטוח הלאומי", Text: "גיל מינימלי 18.", SectionRef: "סעיף 3(א)"},
		{SourceID: "תקנות סיעוד", Text: "מבחן תלות תפקודית."},
	}

	got := formatSections(sections)
	assert.Equal(t, "1. חוק הביטוח הלאומי: גיל מינימלי 18.\n2. תקנות סיעוד: מבחן תלות תפקודית.\n", got)
}

func TestFormatSections_Sentinel(t *testing.T) {
	got := formatSections([]core.RetrievedSection{core.NoMatchSection()})
	assert.Equal(t, "1. N/A: "+core.NoMatchText+"\n", got)
}

func TestBuildComposerPrompt(t *testing.T) {
	sections := []core.RetrievedSection{
		{SourceID: "חוק הביטוח הלאומי", Text: "גיל מינימלי 18."},
	}

	prompt := buildComposerPrompt("האם המטופל זכאי לגמלת סיעוד?", "בן 70, תלוי בעזרת הזולת.", sections)

	assert.Contains(t, prompt, "שאלה: האם המטופל זכאי לגמלת סיעוד?")
	assert.Contains(t, prompt, "פרטי המטופל: בן 70, תלוי בעזרת הזולת.")
	assert.Contains(t, prompt, "קריטריונים רלוונטיים:\n1. חוק הביטוח הלאומי: גיל מינימלי 18.")
	assert.Contains(t, prompt, "בהתבסס על המידע")
}
