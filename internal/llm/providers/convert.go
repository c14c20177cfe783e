package providers

import (
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/manoharask/msme/internal/llm"
)

// toSchemaMessages converts platform messages to langchaingo MessageContent.
// A non-empty SystemPrompt on the request is prepended as a system message.
func toSchemaMessages(req llm.CompletionRequest) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		result = append(result, llms.MessageContent{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.SystemPrompt)},
		})
	}

	for _, msg := range req.Messages {
		var role schema.ChatMessageType

		switch msg.Role {
		case llm.RoleSystem:
			role = schema.ChatMessageTypeSystem
		case llm.RoleAssistant:
			role = schema.ChatMessageTypeAI
		default:
			role = schema.ChatMessageTypeHuman
		}

		result = append(result, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	return result
}

// fromLangchainResponse converts a langchaingo response to a platform response.
func fromLangchainResponse(resp *llms.ContentResponse, model string) *llm.CompletionResponse {
	if resp == nil {
		return &llm.CompletionResponse{
			ID:    uuid.New().String(),
			Model: model,
		}
	}

	var content string
	finishReason := llm.FinishReasonStop
	usage := llm.CompletionTokenUsage{}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		content = choice.Content

		if choice.StopReason == "length" || choice.StopReason == "max_tokens" {
			finishReason = llm.FinishReasonLength
		}

		if choice.GenerationInfo != nil {
			if v, ok := choice.GenerationInfo["PromptTokens"].(int); ok {
				usage.PromptTokens = v
			}
			if v, ok := choice.GenerationInfo["CompletionTokens"].(int); ok {
				usage.CompletionTokens = v
			}
			usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
		}
	}

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        model,
		Message:      llm.NewAssistantMessage(content),
		FinishReason: finishReason,
		Usage:        usage,
	}
}

// buildCallOptions builds langchaingo call options from a completion request.
func buildCallOptions(req llm.CompletionRequest) []llms.CallOption {
	callOpts := make([]llms.CallOption, 0)

	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(req.Temperature))
	}

	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}

	if req.TopP > 0 {
		callOpts = append(callOpts, llms.WithTopP(req.TopP))
	}

	if len(req.StopSequences) > 0 {
		callOpts = append(callOpts, llms.WithStopWords(req.StopSequences))
	}

	if req.Model != "" {
		callOpts = append(callOpts, llms.WithModel(req.Model))
	}

	return callOpts
}
