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


package zakaut

import (
	"context"
	"log/slog"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/ai/openai"
	"github.com/poiesic/zakaut/answer"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/planner"
	"github.com/poiesic/zakaut/retrieval"
	"github.com/poiesic/zakaut/routing"
	"github.com/poiesic/zakaut/storage"
	"github.com/poiesic/zakaut/storage/badger"
)

// Pipeline wires the eligibility stages (route, plan, retrieve, compose) over
// one storage backend and one AI provider. Answered cases are recorded in the
// case log; routes are cached by intake content.
type Pipeline struct {
	backend   *badger.Backend
	cases     storage.CaseRepository
	routes    storage.RouteCache
	provider  ai.Provider
	router    *routing.Router
	retriever *retrieval.Retriever
	generator *answer.Generator
	logger    *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	aiConfig      *ai.Config
	provider      ai.Provider
	retrievalOpts []retrieval.Option
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) PipelineOption {
	return func(o *pipelineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider sets an explicit AI provider instead of building one from the
// config. The pipeline takes ownership and closes it on Close.
func WithProvider(provider ai.Provider) PipelineOption {
	return func(o *pipelineOptions) {
		o.provider = provider
	}
}

// WithRetrievalOptions passes options through to the pipeline's retriever.
func WithRetrievalOptions(opts ...retrieval.Option) PipelineOption {
	return func(o *pipelineOptions) {
		o.retrievalOpts = append(o.retrievalOpts, opts...)
	}
}

// NewPipeline opens storage at filePath and wires the stages.
func NewPipeline(filePath string, opts ...PipelineOption) (*Pipeline, error) {
	// Apply options
	options := &pipelineOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create case repository
	cases, err := badger.NewCaseRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create route cache
	routes := badger.NewRouteCache(backend)

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			cases.Close()
			backend.Close()
			return nil, err
		}
	}

	router, err := routing.NewRouter(provider.Classifier(),
		routing.WithCache(routes),
		routing.WithMinConfidence(options.aiConfig.MinConfidence))
	if err != nil {
		provider.Close()
		cases.Close()
		backend.Close()
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(options.retrievalOpts...)
	if err != nil {
		provider.Close()
		cases.Close()
		backend.Close()
		return nil, err
	}

	generator, err := answer.NewGenerator(provider.Composer())
	if err != nil {
		retriever.Release()
		provider.Close()
		cases.Close()
		backend.Close()
		return nil, err
	}

	return &Pipeline{
		backend:   backend,
		cases:     cases,
		routes:    routes,
		provider:  provider,
		router:    router,
		retriever: retriever,
		generator: generator,
		logger:    slog.Default(),
	}, nil
}

// Close releases the pipeline's resources.
func (p *Pipeline) Close() error {
	// Close AI provider first
	if err := p.provider.Close(); err != nil {
		p.logger.Error("error closing AI provider", "err", err)
	}

	p.retriever.Release()

	if err := p.cases.Close(); err != nil {
		p.logger.Error("error closing case repository", "err", err)
		return err
	}

	if err := p.backend.Close(); err != nil {
		p.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CaseRepository returns the case log.
func (p *Pipeline) CaseRepository() storage.CaseRepository {
	return p.cases
}

// Route classifies an intake document into eligibility categories.
func (p *Pipeline) Route(ctx context.Context, documentText string) (*core.RouteResult, error) {
	return p.router.Route(ctx, documentText)
}

// Retrieve runs the deterministic retrieval stage on its own: criteria
// queries against criteria documents, no model calls, nothing recorded.
func (p *Pipeline) Retrieve(ctx context.Context, queries []string, docs []core.CriteriaDocument) ([]core.RetrievedSection, error) {
	return p.retriever.Retrieve(ctx, queries, docs)
}

// ProcessOptions holds optional parameters for Process.
type ProcessOptions struct {
	RunID string // Correlates case records written by one batch run
}

// ProcessResult is the outcome of answering one intake document.
type ProcessResult struct {
	Route *core.RouteResult
	Cases []*core.CaseRecord
}

// Process answers one intake document against a criteria corpus: route to
// categories, build a retrieval plan per category, retrieve criteria
// sections, and compose an answer. Every answered category is recorded in
// the case log.
//
// Routed labels that no plan exists for (including the classification
// fallback) are skipped with a log line; they are labels, not eligibility
// categories. Retrieval, composition, or storage failures abort with an
// error. All categories are composed before any case is recorded, so a
// model failure never leaves a partial set of records behind.
func (p *Pipeline) Process(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *ProcessOptions) (*ProcessResult, error) {
	if opts == nil {
		opts = &ProcessOptions{}
	}

	if err := core.ValidateIntake(intakeText); err != nil {
		return nil, err
	}
	if err := core.ValidateDocuments(docs); err != nil {
		return nil, err
	}

	route, err := p.router.Route(ctx, intakeText)
	if err != nil {
		return nil, err
	}

	var records []*core.CaseRecord
	for _, category := range route.Categories {
		plan, err := planner.BuildPlan(category, intakeText)
		if err != nil {
			p.logger.Warn("no plan for routed label, skipping", "label", category, "err", err)
			continue
		}

		sections, err := p.retriever.Retrieve(ctx, plan.Queries, docs)
		if err != nil {
			return nil, err
		}

		answerText, err := p.generator.Generate(ctx, plan.Question, intakeText, sections)
		if err != nil {
			return nil, err
		}

		records = append(records, &core.CaseRecord{
			RunID:    opts.RunID,
			Category: string(plan.Category),
			Question: plan.Question,
			Queries:  plan.Queries,
			Sections: sections,
			Answer:   answerText,
		})
	}

	result := &ProcessResult{Route: route}
	for _, record := range records {
		if _, err := p.cases.AddCase(ctx, record); err != nil {
			return nil, err
		}
		result.Cases = append(result.Cases, record)
	}

	return result, nil
}
