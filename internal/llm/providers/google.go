package providers

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/manoharask/msme/internal/llm"
	"github.com/manoharask/msme/internal/types"
)

// GoogleProvider implements llm.Provider for Google's Gemini models
type GoogleProvider struct {
	client *googleai.GoogleAI
	config llm.ProviderConfig
}

// NewGoogleProvider creates a new Google provider
func NewGoogleProvider(cfg llm.ProviderConfig) (*GoogleProvider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	if apiKey == "" {
		return nil, llm.NewAuthError("google", nil)
	}

	opts := []googleai.Option{
		googleai.WithAPIKey(apiKey),
	}

	if cfg.DefaultModel != "" {
		opts = append(opts, googleai.WithDefaultModel(cfg.DefaultModel))
	}

	client, err := googleai.New(context.Background(), opts...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}

	return &GoogleProvider{
		client: client,
		config: cfg,
	}, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// Models returns information about available models
func (p *GoogleProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	models := []llm.ModelInfo{
		{
			Name:          "gemini-1.5-pro",
			ContextWindow: 1048576,
			MaxOutput:     8192,
			Features:      []string{"chat", "streaming", "vision"},
		},
		{
			Name:          "gemini-1.5-flash",
			ContextWindow: 1048576,
			MaxOutput:     8192,
			Features:      []string{"chat", "streaming", "vision"},
		},
	}
	return models, nil
}

// Complete sends a completion request
func (p *GoogleProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	messages := toSchemaMessages(req)
	callOpts := buildCallOptions(req)

	resp, err := p.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}

	return fromLangchainResponse(resp, req.Model), nil
}

// Health checks provider health with a minimal completion
func (p *GoogleProvider) Health(ctx context.Context) types.HealthStatus {
	req := llm.NewCompletionRequest(p.config.DefaultModel,
		[]llm.Message{llm.NewUserMessage("ping")},
		llm.WithMaxTokens(1),
	)

	if _, err := p.Complete(ctx, req); err != nil {
		return types.Unhealthy("google completion check failed: " + err.Error())
	}

	return types.Healthy("google provider operational")
}
