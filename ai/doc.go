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


// Package ai provides abstractions for the AI services used by the
// eligibility pipeline.
//
// The retrieval engine itself is deterministic and never calls a model; AI
// sits at the edges of the pipeline. This package defines the interfaces for
// those two edges and keeps the core stages free of any provider coupling.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Classifier: Scores routing labels against Hebrew intake text
//   - Composer: Writes the final eligibility answer with citations
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewClassifier, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockClassifier, mock.NewMockComposer)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields and methods (ScoreCategoriesFunc, CallCount, Reset).
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	scored, err := provider.Classifier().ScoreCategories(ctx, intakeText)
//	answer, err := provider.Composer().ComposeAnswer(ctx, question, intakeText, sections)
package ai
