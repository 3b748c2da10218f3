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


package ai

import (
	"errors"
	"os"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// ClassifierHost is the base URL for the classification service API.
	// Example: "https://api.openai.com/v1", or "http://localhost:11434/v1"
	// for a local OpenAI-compatible server.
	ClassifierHost string

	// ComposerHost is the base URL for the answer composition service API.
	ComposerHost string

	// ClassifierModel is the model identifier used to score categories.
	// Example: "gpt-4o", "qwen2.5:3b"
	ClassifierModel string

	// ComposerModel is the model identifier used to compose answers.
	ComposerModel string

	// Token is the API key sent to the services. Defaults to the
	// OPENAI_API_KEY environment variable; local OpenAI-compatible servers
	// accept any non-empty value.
	Token string

	// MinConfidence is the threshold in [0,1] a scored label must reach to
	// count as routed. Default: 0.40
	MinConfidence float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithClassifierHost sets the classifier service host URL.
func WithClassifierHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
	}
}

// WithComposerHost sets the composer service host URL.
func WithComposerHost(host string) ConfigOption {
	return func(c *Config) {
		c.ComposerHost = host
	}
}

// WithHost sets both classifier and composer hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
		c.ComposerHost = host
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithComposerModel sets the composer model identifier.
func WithComposerModel(model string) ConfigOption {
	return func(c *Config) {
		c.ComposerModel = model
	}
}

// WithToken sets the API key.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithMinConfidence sets the routing confidence threshold.
func WithMinConfidence(min float64) ConfigOption {
	return func(c *Config) {
		c.MinConfidence = min
	}
}

// DefaultConfig returns a Config aimed at the OpenAI API, with the token taken
// from the OPENAI_API_KEY environment variable. Both services use the same
// host and model by default.
func DefaultConfig() *Config {
	defaultHost := "https://api.openai.com/v1"
	return &Config{
		ClassifierHost:  defaultHost,
		ComposerHost:    defaultHost,
		ClassifierModel: "gpt-4o",
		ComposerModel:   "gpt-4o",
		Token:           os.Getenv("OPENAI_API_KEY"),
		MinConfidence:   0.40,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434"),
//	    WithClassifierModel("qwen2.5:3b"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to hosts if missing, which is required by most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc), and substitutes a
// placeholder token when none is set so that local services that do not check
// authentication still work.
func (c *Config) Normalize() {
	if c.ClassifierHost != "" && !strings.HasSuffix(c.ClassifierHost, "/v1") {
		c.ClassifierHost = strings.TrimSuffix(c.ClassifierHost, "/")
		c.ClassifierHost = c.ClassifierHost + "/v1"
	}
	if c.ComposerHost != "" && !strings.HasSuffix(c.ComposerHost, "/v1") {
		c.ComposerHost = strings.TrimSuffix(c.ComposerHost, "/")
		c.ComposerHost = c.ComposerHost + "/v1"
	}
	if c.Token == "" {
		c.Token = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.ClassifierHost == "" {
		return errors.New("ai config: ClassifierHost is required")
	}
	if c.ComposerHost == "" {
		return errors.New("ai config: ComposerHost is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.ComposerModel == "" {
		return errors.New("ai config: ComposerModel is required")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return errors.New("ai config: MinConfidence must be between 0 and 1")
	}
	return nil
}
