package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/zakaut/core"
)

// MockComposer is a test double for ai.Composer.
// It allows custom behavior injection via function fields.
type MockComposer struct {
	// ComposeAnswerFunc is called by ComposeAnswer if set.
	// If nil, uses a deterministic canned answer.
	ComposeAnswerFunc func(ctx context.Context, question, patientText string, sections []core.RetrievedSection) (string, error)

	callCount int
}

// NewMockComposer creates a mock composer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockComposer().
func NewMockComposer() *MockComposer {
	return &MockComposer{}
}

// ComposeAnswer returns a deterministic Hebrew answer that names the question
// and the number of criteria sections it was given.
func (m *MockComposer) ComposeAnswer(ctx context.Context, question, patientText string, sections []core.RetrievedSection) (string, error) {
	m.callCount++

	if m.ComposeAnswerFunc != nil {
		return m.ComposeAnswerFunc(ctx, question, patientText, sections)
	}

	return fmt.Sprintf("תשובה לדוגמה לשאלה: %s (%d קריטריונים נבחנו).", question, len(sections)), nil
}

// CallCount returns the number of times ComposeAnswer was called.
func (m *MockComposer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockComposer) Reset() {
	m.callCount = 0
	m.ComposeAnswerFunc = nil
}
