package llm

import (
	"context"

	"github.com/manoharask/msme/internal/types"
)

// Provider defines the interface that all LLM providers must implement.
// It provides a unified abstraction for interacting with different LLM
// services (OpenAI GPT, Google Gemini, local Ollama models, etc.).
//
// The pipeline depends only on Complete, so any deterministic stub that
// implements this interface can stand in for a real provider in tests.
type Provider interface {
	// Name returns the provider name (e.g., "openai", "google", "ollama")
	Name() string

	// Models returns information about all available models for this provider
	Models(ctx context.Context) ([]ModelInfo, error)

	// Complete sends a completion request and returns the full response.
	// This is a blocking call that waits for the entire response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Health checks the health status of the provider and its connectivity
	Health(ctx context.Context) types.HealthStatus
}
