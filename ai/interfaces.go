package ai

import (
	"context"

	"github.com/poiesic/zakaut/core"
)

// Classifier scores eligibility category labels against Hebrew intake text.
// Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// ScoreCategories rates how relevant each allowed label is to the intake
	// text. The returned slice contains every label in AllowedLabels exactly
	// once, each with a confidence in [0,1]; a label the model did not
	// mention is reported with confidence 0.
	// Returns an error if the classification call or response parsing fails.
	ScoreCategories(ctx context.Context, documentText string) ([]core.ScoredCategory, error)
}

// Composer writes the final eligibility answer in Hebrew.
// Implementations must be thread-safe for concurrent use.
type Composer interface {
	// ComposeAnswer answers the eligibility question from the patient text
	// and the retrieved criteria sections, citing the section sources.
	// Sentinel sections (SourceID core.SourceNA) are rendered as missing
	// information, so the answer states the gap instead of citing it.
	// Returns an error if the composition call fails.
	ComposeAnswer(ctx context.Context, question, patientText string, sections []core.RetrievedSection) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Classifier and Composer
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Classifier returns the category scoring service.
	// The returned Classifier is safe for concurrent use.
	Classifier() Classifier

	// Composer returns the answer composition service.
	// The returned Composer is safe for concurrent use.
	Composer() Composer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
