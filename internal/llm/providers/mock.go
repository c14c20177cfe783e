package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/manoharask/msme/internal/llm"
	"github.com/manoharask/msme/internal/types"
)

// MockCall represents a recorded call to the mock provider
type MockCall struct {
	Request llm.CompletionRequest
}

// MockProvider implements llm.Provider for testing. Responses are served
// in order and calls are recorded for verification.
type MockProvider struct {
	mu            sync.RWMutex
	responses     []string
	errs          []error
	responseIndex int
	calls         []MockCall
}

// NewMockProvider creates a new mock provider that cycles through the
// configured responses.
func NewMockProvider(responses []string) *MockProvider {
	return &MockProvider{
		responses: responses,
		calls:     make([]MockCall, 0),
	}
}

// FailAt configures the i-th call (zero-based) to return the given error
// instead of a response.
func (p *MockProvider) FailAt(i int, err error) *MockProvider {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.errs) <= i {
		p.errs = append(p.errs, nil)
	}
	p.errs[i] = err
	return p
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// Models returns mock model information
func (p *MockProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	return []llm.ModelInfo{
		{
			Name:          "mock-model",
			ContextWindow: 4096,
			MaxOutput:     2048,
			Features:      []string{"chat"},
		},
	}, nil
}

// Complete generates a completion
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	p.calls = append(p.calls, MockCall{Request: req})
	idx := p.responseIndex
	p.responseIndex++

	if idx < len(p.errs) && p.errs[idx] != nil {
		err := p.errs[idx]
		p.mu.Unlock()
		return nil, err
	}

	if len(p.responses) == 0 {
		p.mu.Unlock()
		return nil, llm.NewProviderError("mock", fmt.Errorf("no responses configured"))
	}

	response := p.responses[idx%len(p.responses)]
	p.mu.Unlock()

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Message:      llm.NewAssistantMessage(response),
		FinishReason: llm.FinishReasonStop,
	}, nil
}

// Health returns healthy for the mock provider
func (p *MockProvider) Health(ctx context.Context) types.HealthStatus {
	return types.Healthy("mock provider")
}

// Calls returns all recorded calls
func (p *MockProvider) Calls() []MockCall {
	p.mu.RLock()
	defer p.mu.RUnlock()

	calls := make([]MockCall, len(p.calls))
	copy(calls, p.calls)
	return calls
}

// CallCount returns the number of recorded calls
func (p *MockProvider) CallCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.calls)
}
