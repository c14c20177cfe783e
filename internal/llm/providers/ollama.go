package providers

import (
	"context"

	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/manoharask/msme/internal/llm"
	"github.com/manoharask/msme/internal/types"
)

// OllamaProvider implements llm.Provider for local Ollama models.
type OllamaProvider struct {
	client *ollama.LLM
	config llm.ProviderConfig
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(cfg llm.ProviderConfig) (*OllamaProvider, error) {
	serverURL := cfg.BaseURL
	if serverURL == "" {
		serverURL = "http://localhost:11434"
	}

	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
	}

	if cfg.DefaultModel != "" {
		opts = append(opts, ollama.WithModel(cfg.DefaultModel))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, llm.TranslateError("ollama", err)
	}

	return &OllamaProvider{
		client: client,
		config: cfg,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Models returns information about available models
func (p *OllamaProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	// Default local models; the live list would need to be queried from Ollama.
	models := []llm.ModelInfo{
		{
			Name:          "llama3",
			ContextWindow: 8192,
			MaxOutput:     4096,
			Features:      []string{"chat", "streaming"},
		},
		{
			Name:          "mistral",
			ContextWindow: 8192,
			MaxOutput:     4096,
			Features:      []string{"chat", "streaming"},
		},
	}
	return models, nil
}

// Complete sends a completion request
func (p *OllamaProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	messages := toSchemaMessages(req)
	callOpts := buildCallOptions(req)

	resp, err := p.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return nil, llm.TranslateError("ollama", err)
	}

	return fromLangchainResponse(resp, req.Model), nil
}

// Health checks provider health with a minimal completion
func (p *OllamaProvider) Health(ctx context.Context) types.HealthStatus {
	req := llm.NewCompletionRequest(p.config.DefaultModel,
		[]llm.Message{llm.NewUserMessage("ping")},
		llm.WithMaxTokens(1),
	)

	if _, err := p.Complete(ctx, req); err != nil {
		return types.Unhealthy("ollama completion check failed: " + err.Error())
	}

	return types.Healthy("ollama provider operational")
}
