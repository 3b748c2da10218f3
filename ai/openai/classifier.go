// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// scoredItem matches one scored label in the LLM's JSON response.
type scoredItem struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// scoredPayload is the wrapper structure for the LLM's JSON response.
// Categories carries the legacy shape some models fall back to.
type scoredPayload struct {
	Scored     []scoredItem `json:"scored"`
	Categories []string     `json:"categories"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new classifier using the provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// ScoreCategories scores every allowed label against the intake text using an
// LLM forced into JSON mode. The result carries each allowed label exactly
// once with a clamped confidence; labels the model skipped score 0.
func (c *Classifier) ScoreCategories(ctx context.Context, documentText string) ([]core.ScoredCategory, error) {
	userPrompt := buildClassifierPrompt(documentText)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(classifierSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var payload scoredPayload
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			c.logger.Debug("no choices returned from model")
			return []core.ScoredCategory{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
		return nil, lastErr
	}

	scored := alignScores(payload)
	c.logger.Debug("scored categories", "labels", len(scored))
	return scored, nil
}

// alignScores converts a decoded payload into exactly one score per allowed
// label: unknown labels are dropped, duplicates keep their first score,
// confidences are clamped to [0,1], and labels the model skipped are added
// with confidence 0. A payload carrying only the legacy "categories" list is
// mapped to 1.0/0.0 scores.
func alignScores(payload scoredPayload) []core.ScoredCategory {
	if payload.Scored == nil && payload.Categories != nil {
		chosen := make(map[string]bool, len(payload.Categories))
		for _, name := range payload.Categories {
			if label, ok := allowedLabel(name); ok {
				chosen[label] = true
			}
		}
		scored := make([]core.ScoredCategory, 0, len(ai.AllowedLabels))
		for _, label := range ai.AllowedLabels {
			conf := 0.0
			if chosen[label] {
				conf = 1.0
			}
			scored = append(scored, core.ScoredCategory{Name: label, Confidence: conf})
		}
		return scored
	}
	if payload.Scored == nil {
		return nil
	}

	seen := make(map[string]bool, len(payload.Scored))
	scored := make([]core.ScoredCategory, 0, len(ai.AllowedLabels))
	for _, item := range payload.Scored {
		label, ok := allowedLabel(item.Name)
		if !ok || seen[label] {
			continue
		}
		conf := item.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		scored = append(scored, core.ScoredCategory{Name: label, Confidence: conf})
		seen[label] = true
	}
	for _, label := range ai.AllowedLabels {
		if !seen[label] {
			scored = append(scored, core.ScoredCategory{Name: label, Confidence: 0})
		}
	}
	return scored
}

// allowedLabel reports the canonical allowed label for name after trimming
// surrounding whitespace.
func allowedLabel(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, label := range ai.AllowedLabels {
		if label == trimmed {
			return trimmed, true
		}
	}
	return "", false
}
