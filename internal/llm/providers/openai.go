package providers

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/manoharask/msme/internal/llm"
	"github.com/manoharask/msme/internal/types"
)

// OpenAIProvider implements llm.Provider for OpenAI's GPT models
type OpenAIProvider struct {
	client *openai.LLM
	config llm.ProviderConfig
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(cfg llm.ProviderConfig) (*OpenAIProvider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	if apiKey == "" {
		return nil, llm.NewAuthError("openai", nil)
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
	}

	if cfg.DefaultModel != "" {
		opts = append(opts, openai.WithModel(cfg.DefaultModel))
	}

	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, llm.TranslateError("openai", err)
	}

	return &OpenAIProvider{
		client: client,
		config: cfg,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Models returns information about available models
func (p *OpenAIProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	models := []llm.ModelInfo{
		{
			Name:          "gpt-4o-mini",
			ContextWindow: 128000,
			MaxOutput:     16384,
			Features:      []string{"chat", "streaming", "json"},
		},
		{
			Name:          "gpt-4o",
			ContextWindow: 128000,
			MaxOutput:     16384,
			Features:      []string{"chat", "streaming", "vision", "json"},
		},
		{
			Name:          "gpt-3.5-turbo",
			ContextWindow: 16385,
			MaxOutput:     4096,
			Features:      []string{"chat", "streaming", "json"},
		},
	}
	return models, nil
}

// Complete sends a completion request
func (p *OpenAIProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	messages := toSchemaMessages(req)
	callOpts := buildCallOptions(req)

	resp, err := p.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return nil, llm.TranslateError("openai", err)
	}

	return fromLangchainResponse(resp, req.Model), nil
}

// Health checks provider health with a minimal completion
func (p *OpenAIProvider) Health(ctx context.Context) types.HealthStatus {
	req := llm.NewCompletionRequest(p.config.DefaultModel,
		[]llm.Message{llm.NewUserMessage("ping")},
		llm.WithMaxTokens(1),
	)

	if _, err := p.Complete(ctx, req); err != nil {
		return types.Unhealthy("openai completion check failed: " + err.Error())
	}

	return types.Healthy("openai provider operational")
}
