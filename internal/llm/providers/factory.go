package providers

import (
	"fmt"

	"github.com/manoharask/msme/internal/llm"
)

// NewProvider creates a new LLM provider based on the configuration
func NewProvider(cfg llm.ProviderConfig) (llm.Provider, error) {
	switch cfg.Type {
	case llm.ProviderOpenAI:
		return NewOpenAIProvider(cfg)

	case llm.ProviderGoogle:
		return NewGoogleProvider(cfg)

	case llm.ProviderOllama:
		return NewOllamaProvider(cfg)

	case llm.ProviderMock:
		return NewMockProvider([]string{"Mock response"}), nil

	default:
		return nil, llm.NewInvalidInputError("factory", fmt.Sprintf("unknown provider type: %s", cfg.Type))
	}
}
