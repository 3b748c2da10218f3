package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Composer implements ai.Composer using OpenAI-compatible chat APIs.
type Composer struct {
	client llms.Model
	logger *slog.Logger
}

// newComposer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newComposer(config *ai.Config) (*Composer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ComposerHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ComposerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Composer{
		client: client,
		logger: slog.Default().With("component", "openai-composer"),
	}, nil
}

// NewComposer creates a new composer using the provided configuration.
//
// Returns ai.Composer interface to enforce abstraction.
func NewComposer(config *ai.Config) (ai.Composer, error) {
	return newComposer(config)
}

// ComposeAnswer writes the eligibility answer in Hebrew from the question,
// the patient text and the retrieved criteria sections. Generation runs at
// low temperature with a bounded answer length so repeated runs stay close.
func (c *Composer) ComposeAnswer(ctx context.Context, question, patientText string, sections []core.RetrievedSection) (string, error) {
	userPrompt := buildComposerPrompt(question, patientText, sections)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(composerSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.2), llms.WithMaxTokens(1024))
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		c.logger.Warn("no choices returned from model")
		return "", errors.New("composer: model returned no choices")
	}

	answer := strings.TrimSpace(response.Choices[0].Content)
	c.logger.Debug("composed answer", "length", len(answer), "sections", len(sections))
	return answer, nil
}
