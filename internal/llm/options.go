package llm

// CompletionOption is a functional option for configuring completion requests.
// This pattern allows for flexible, readable configuration of LLM requests.
type CompletionOption func(*CompletionRequest)

// WithTemperature sets the temperature for the completion request.
// Temperature controls randomness in the output (0.0 - 1.0).
// Lower values (e.g., 0.0) make output more focused and deterministic.
// Higher values (e.g., 0.8) make output more creative and varied.
func WithTemperature(temperature float64) CompletionOption {
	return func(req *CompletionRequest) {
		req.Temperature = temperature
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
// This limits the length of the LLM's response.
func WithMaxTokens(maxTokens int) CompletionOption {
	return func(req *CompletionRequest) {
		req.MaxTokens = maxTokens
	}
}

// WithTopP sets the nucleus sampling parameter (0.0 - 1.0).
func WithTopP(topP float64) CompletionOption {
	return func(req *CompletionRequest) {
		req.TopP = topP
	}
}

// WithStopSequences sets sequences that will stop generation when encountered.
func WithStopSequences(sequences ...string) CompletionOption {
	return func(req *CompletionRequest) {
		req.StopSequences = sequences
	}
}

// WithSystemPrompt sets a system prompt for the completion request.
// System prompts provide high-level instructions and context to the LLM.
func WithSystemPrompt(prompt string) CompletionOption {
	return func(req *CompletionRequest) {
		req.SystemPrompt = prompt
	}
}

// ApplyOptions applies a list of options to a completion request.
// This is a helper function for implementing providers.
func ApplyOptions(req *CompletionRequest, opts ...CompletionOption) {
	for _, opt := range opts {
		opt(req)
	}
}

// NewCompletionRequest creates a new completion request with the given model
// and messages. Additional options can be applied using the functional
// options pattern.
//
// Example:
//
//	req := NewCompletionRequest("gpt-4o-mini",
//	    []Message{NewUserMessage("Question: which SNPs serve textiles?")},
//	    WithTemperature(0),
//	    WithMaxTokens(600),
//	)
func NewCompletionRequest(model string, messages []Message, opts ...CompletionOption) CompletionRequest {
	req := CompletionRequest{
		Model:    model,
		Messages: messages,
	}

	ApplyOptions(&req, opts...)
	return req
}
