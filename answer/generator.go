package answer

import (
	"context"
	"log/slog"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
)

// NoCriteriaAnswer is the fixed answer returned when no criteria sections
// were retrieved for the question.
const NoCriteriaAnswer = "מצטערים, לא ניתן לקבוע זכאות כיוון שלא נמצאו קריטריונים רלוונטיים במידע שסופק."

// Generator composes eligibility answers over an ai.Composer.
type Generator struct {
	composer ai.Composer
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a new answer generator over a composer.
func NewGenerator(composer ai.Composer, opts ...Option) (*Generator, error) {
	if composer == nil {
		return nil, ErrComposerRequired
	}

	g := &Generator{
		composer: composer,
		logger:   slog.Default().With("component", "generator"),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate answers the eligibility question from the patient's details and
// the retrieved criteria sections.
//
// An empty section list short-circuits to NoCriteriaAnswer without a model
// call. A composer failure is returned as an error.
func (g *Generator) Generate(ctx context.Context, question, patientText string, sections []core.RetrievedSection) (string, error) {
	if len(sections) == 0 {
		g.logger.Debug("no criteria sections, returning fixed answer", "question", question)
		return NoCriteriaAnswer, nil
	}

	answer, err := g.composer.ComposeAnswer(ctx, question, patientText, sections)
	if err != nil {
		g.logger.Error("composer failed", "question", question, "err", err)
		return "", err
	}

	g.logger.Info("composed answer",
		"question", question,
		"sections", len(sections),
		"answerLength", len(answer))

	return answer, nil
}
