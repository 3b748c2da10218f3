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


package mock

import "github.com/poiesic/zakaut/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock classifier and composer instances.
type MockProvider struct {
	classifier *MockClassifier
	composer   *MockComposer
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockClassifier()/GetMockComposer() to access concrete types for test
// assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		classifier: NewMockClassifier(),
		composer:   NewMockComposer(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(classifier *MockClassifier, composer *MockComposer) ai.Provider {
	return &MockProvider{
		classifier: classifier,
		composer:   composer,
	}
}

// Classifier returns the mock classifier.
func (p *MockProvider) Classifier() ai.Classifier {
	return p.classifier
}

// Composer returns the mock composer.
func (p *MockProvider) Composer() ai.Composer {
	return p.composer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockClassifier returns the underlying mock classifier for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockClassifier() *MockClassifier {
	return p.classifier
}

// GetMockComposer returns the underlying mock composer for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockComposer() *MockComposer {
	return p.composer
}
