package mock

import (
	"context"
	"strings"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ScoreCategoriesFunc is called by ScoreCategories if set.
	// If nil, uses default label-mention scoring.
	ScoreCategoriesFunc func(ctx context.Context, documentText string) ([]core.ScoredCategory, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockClassifier().
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// ScoreCategories scores labels deterministically from the text.
// Default behavior: a label mentioned verbatim in the text scores 0.9, any
// other label scores 0.05, so confidence thresholds behave predictably in
// tests. Every allowed label appears exactly once.
func (m *MockClassifier) ScoreCategories(ctx context.Context, documentText string) ([]core.ScoredCategory, error) {
	m.callCount++

	if m.ScoreCategoriesFunc != nil {
		return m.ScoreCategoriesFunc(ctx, documentText)
	}

	scored := make([]core.ScoredCategory, 0, len(ai.AllowedLabels))
	for _, label := range ai.AllowedLabels {
		confidence := 0.05
		if strings.Contains(documentText, label) {
			confidence = 0.9
		}
		scored = append(scored, core.ScoredCategory{Name: label, Confidence: confidence})
	}
	return scored, nil
}

// CallCount returns the number of times ScoreCategories was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ScoreCategoriesFunc = nil
}
