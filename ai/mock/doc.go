// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Classifier, ai.Composer,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic
// behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	scored, err := mockProvider.Classifier().ScoreCategories(ctx, "טקסט שמזכיר ניידות")
//
//	// Custom behavior injection
//	mockClassifier := mock.NewMockClassifier()
//	mockClassifier.ScoreCategoriesFunc = func(ctx context.Context, text string) ([]core.ScoredCategory, error) {
//	    return nil, errors.New("service down")
//	}
//
//	// Check call counts
//	count := mockClassifier.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockClassifier: Scores labels mentioned in the text 0.9, others 0.05
//   - MockComposer: Returns a deterministic Hebrew answer naming the question
//   - MockProvider: Aggregates mock classifier and composer
package mock
