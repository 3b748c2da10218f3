package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
)

// classifierSystemPrompt biases the model toward high recall: a borderline
// category gets a positive score rather than being dropped, and the output is
// restricted to plain JSON.
const classifierSystemPrompt = "אתה מנהל תיקים בכיר במשרד עורכי דין לזכויות רפואיות. " +
	"היצמד אך ורק לטקסט שסופק. " +
	"הטה את סף ההחלטה לרגישות גבוהה: העדף False Positives על פני False Negatives; " +
	"במקרה גבולי או אי-ודאות — הוסף/נקד ציון חיובי לקטגוריה. " +
	"אל תמציא קטגוריות חדשות. " +
	"החזר JSON תקין בלבד."

const classifierPromptTemplate = `קטגוריות מותרות (בעברית): [%s]

טקסט המסמך (בעברית):
%s

דרישות פלט (JSON בלבד):
1) שדה 'scored' עם רשימה של אובייקטים לכל קטגוריה מותרת בדיוק פעם אחת.
2) לכל אובייקט: name (String מתוך הרשימה) ו-confidence (מספר בין 0 ל-1).
3) אין לכלול שדות נוספים.
דוגמה מבנית מחייבת (שנה את השמות/ציונים בהתאם למסמך):
{"scored": [{"name": "תג נכה", "confidence": 0.62}, {"name": "ניידות", "confidence": 0.35}]}`

// buildClassifierPrompt creates the user message for a classification call
// with the allowed labels embedded.
func buildClassifierPrompt(documentText string) string {
	return fmt.Sprintf(classifierPromptTemplate,
		strings.Join(ai.AllowedLabels, ", "),
		documentText)
}

const composerSystemPrompt = "אתה עוזר מומחה בתחום הזכאות לגמלאות. " +
	"הסתמך אך ורק על המידע המוצג לך וענה בעברית רשמית וברורה. " +
	"על כל קביעה לספק סימוכין מהמקורות הנתונים. " +
	"אם מידע הדרוש לקביעה חסר במידע שניתן, ציין זאת בתשובתך."

const composerPromptTemplate = `שאלה: %s
פרטי המטופל: %s

קריטריונים רלוונטיים:
%s
בהתבסס על המידע הנ"ל, קבע האם המטופל זכאי או אינו זכאי והסבר את הסיבות לכך. יש להתייחס לכל קריטריון רלוונטי ולצטט את המקור המתאים לכל טענה בתשובתך.`

// formatSections renders the retrieved criteria sections as a numbered list.
// Sentinel sections keep their N/A source, which together with the system
// prompt makes the model state the gap instead of citing it.
func formatSections(sections []core.RetrievedSection) string {
	var b strings.Builder
	for i, s := range sections {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, s.SourceID, s.Text)
	}
	return b.String()
}

// buildComposerPrompt creates the user message for a composition call.
func buildComposerPrompt(question, patientText string, sections []core.RetrievedSection) string {
	return fmt.Sprintf(composerPromptTemplate,
		question,
		patientText,
		formatSections(sections))
}
