package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://api.openai.com/v1", cfg.ClassifierHost)
	assert.Equal(t, "https://api.openai.com/v1", cfg.ComposerHost)
	assert.Equal(t, "gpt-4o", cfg.ClassifierModel)
	assert.Equal(t, "gpt-4o", cfg.ComposerModel)
	assert.Equal(t, 0.40, cfg.MinConfidence)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "https://api.openai.com/v1", cfg.ClassifierHost)
		assert.Equal(t, "https://api.openai.com/v1", cfg.ComposerHost)
		assert.Equal(t, 0.40, cfg.MinConfidence)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.ClassifierHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ComposerHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithClassifierHost("http://classify:9090/v1"),
			WithComposerHost("http://compose:8080/v1"),
		)

		assert.Equal(t, "http://classify:9090/v1", cfg.ClassifierHost)
		assert.Equal(t, "http://compose:8080/v1", cfg.ComposerHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithClassifierModel("qwen2.5:3b"),
			WithComposerModel("gpt-4o-mini"),
		)

		assert.Equal(t, "qwen2.5:3b", cfg.ClassifierModel)
		assert.Equal(t, "gpt-4o-mini", cfg.ComposerModel)
	})

	t.Run("with token", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))

		assert.Equal(t, "sk-test", cfg.Token)
	})

	t.Run("with custom min confidence", func(t *testing.T) {
		cfg := NewConfig(WithMinConfidence(0.7))

		assert.Equal(t, 0.7, cfg.MinConfidence)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithClassifierModel("custom-classify"),
			WithComposerModel("custom-compose"),
			WithToken("sk-test"),
			WithMinConfidence(0.55),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.ClassifierHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ComposerHost)
		assert.Equal(t, "custom-classify", cfg.ClassifierModel)
		assert.Equal(t, "custom-compose", cfg.ComposerModel)
		assert.Equal(t, "sk-test", cfg.Token)
		assert.Equal(t, 0.55, cfg.MinConfidence)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name               string
		classifierHost     string
		composerHost       string
		expectedClassifier string
		expectedComposer   string
	}{
		{
			name:               "already has /v1",
			classifierHost:     "http://localhost:11434/v1",
			composerHost:       "http://localhost:11434/v1",
			expectedClassifier: "http://localhost:11434/v1",
			expectedComposer:   "http://localhost:11434/v1",
		},
		{
			name:               "missing /v1",
			classifierHost:     "http://localhost:11434",
			composerHost:       "http://localhost:11434",
			expectedClassifier: "http://localhost:11434/v1",
			expectedComposer:   "http://localhost:11434/v1",
		},
		{
			name:               "has trailing slash",
			classifierHost:     "http://localhost:11434/",
			composerHost:       "http://localhost:11434/",
			expectedClassifier: "http://localhost:11434/v1",
			expectedComposer:   "http://localhost:11434/v1",
		},
		{
			name:               "empty hosts",
			classifierHost:     "",
			composerHost:       "",
			expectedClassifier: "",
			expectedComposer:   "",
		},
		{
			name:               "different formats",
			classifierHost:     "http://classify:9090",
			composerHost:       "http://compose:8080/v1",
			expectedClassifier: "http://classify:9090/v1",
			expectedComposer:   "http://compose:8080/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ClassifierHost: tt.classifierHost,
				ComposerHost:   tt.composerHost,
			}

			cfg.Normalize()

			assert.Equal(t, tt.expectedClassifier, cfg.ClassifierHost)
			assert.Equal(t, tt.expectedComposer, cfg.ComposerHost)
		})
	}
}

func TestConfigNormalize_Token(t *testing.T) {
	t.Run("empty token gets placeholder", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()
		assert.Equal(t, "none", cfg.Token)
	})

	t.Run("set token is preserved", func(t *testing.T) {
		cfg := &Config{Token: "sk-test"}
		cfg.Normalize()
		assert.Equal(t, "sk-test", cfg.Token)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ClassifierHost:  "http://localhost:11434",
			ComposerHost:    "http://localhost:11434",
			ClassifierModel: "qwen2.5:3b",
			ComposerModel:   "qwen2.5:3b",
			MinConfidence:   0.40,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := valid()

		err := cfg.Validate()
		assert.NoError(t, err)

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.ClassifierHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ComposerHost)
		assert.Equal(t, "none", cfg.Token)
	})

	t.Run("missing classifier host", func(t *testing.T) {
		cfg := valid()
		cfg.ClassifierHost = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ClassifierHost")
	})

	t.Run("missing composer host", func(t *testing.T) {
		cfg := valid()
		cfg.ComposerHost = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ComposerHost")
	})

	t.Run("missing classifier model", func(t *testing.T) {
		cfg := valid()
		cfg.ClassifierModel = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ClassifierModel")
	})

	t.Run("missing composer model", func(t *testing.T) {
		cfg := valid()
		cfg.ComposerModel = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ComposerModel")
	})

	t.Run("min confidence below range", func(t *testing.T) {
		cfg := valid()
		cfg.MinConfidence = -0.1

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MinConfidence")
	})

	t.Run("min confidence above range", func(t *testing.T) {
		cfg := valid()
		cfg.MinConfidence = 1.1

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MinConfidence")
	})

	t.Run("min confidence at boundaries", func(t *testing.T) {
		cfg := valid()
		cfg.MinConfidence = 0
		assert.NoError(t, cfg.Validate())

		cfg.MinConfidence = 1
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfigValidate_Integration(t *testing.T) {
	// Test that NewConfig produces a valid configuration
	cfg := NewConfig()
	err := cfg.Validate()
	require.NoError(t, err)

	// Test that DefaultConfig produces a valid configuration
	cfg = DefaultConfig()
	err = cfg.Validate()
	require.NoError(t, err)
}
