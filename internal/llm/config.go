package llm

import (
	"fmt"

	"github.com/manoharask/msme/internal/types"
)

// ProviderType represents the type of LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
	ProviderMock   ProviderType = "mock"
)

// ProviderConfig contains configuration for a specific LLM provider.
// It includes authentication credentials, API endpoints, and the default
// model to use for completions.
type ProviderConfig struct {
	Type         ProviderType `mapstructure:"type" yaml:"type"`
	APIKey       string       `mapstructure:"api_key" yaml:"api_key"`
	BaseURL      string       `mapstructure:"base_url" yaml:"base_url"`
	DefaultModel string       `mapstructure:"default_model" yaml:"default_model"`
}

// Validate performs validation on the ProviderConfig.
func (p *ProviderConfig) Validate() error {
	if p.Type == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "provider type cannot be empty")
	}

	validTypes := map[ProviderType]bool{
		ProviderOpenAI: true,
		ProviderGoogle: true,
		ProviderOllama: true,
		ProviderMock:   true,
	}
	if !validTypes[p.Type] {
		return types.NewError(
			types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("invalid provider type '%s', must be one of: openai, google, ollama, mock", p.Type),
		)
	}

	// Ollama runs locally and the mock is for tests; neither needs credentials.
	if p.Type == ProviderOpenAI || p.Type == ProviderGoogle {
		if p.DefaultModel == "" {
			return types.NewError(types.CONFIG_VALIDATION_FAILED, "default_model cannot be empty")
		}
	}

	return nil
}
