package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manoharask/msme/internal/llm"
)

func TestMockProvider_CyclesResponses(t *testing.T) {
	ctx := context.Background()
	mock := NewMockProvider([]string{"first", "second"})

	req := llm.NewCompletionRequest("mock-model", []llm.Message{llm.NewUserMessage("q")})

	resp, err := mock.Complete(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Message.Content)

	resp, err = mock.Complete(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Message.Content)

	resp, err = mock.Complete(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Message.Content)

	assert.Equal(t, 3, mock.CallCount())
}

func TestMockProvider_FailAt(t *testing.T) {
	ctx := context.Background()
	mock := NewMockProvider([]string{"ok"}).FailAt(1, errors.New("boom"))

	req := llm.NewCompletionRequest("mock-model", []llm.Message{llm.NewUserMessage("q")})

	_, err := mock.Complete(ctx, req)
	require.NoError(t, err)

	_, err = mock.Complete(ctx, req)
	assert.Error(t, err)

	// Subsequent calls succeed again.
	_, err = mock.Complete(ctx, req)
	assert.NoError(t, err)
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	ctx := context.Background()
	mock := NewMockProvider([]string{"ok"})

	req := llm.NewCompletionRequest("mock-model",
		[]llm.Message{llm.NewUserMessage("Question: top SNPs?")},
		llm.WithSystemPrompt("cypher rules"),
		llm.WithTemperature(0),
	)
	_, err := mock.Complete(ctx, req)
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "cypher rules", calls[0].Request.SystemPrompt)
	assert.Zero(t, calls[0].Request.Temperature)
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(llm.ProviderConfig{Type: llm.ProviderMock})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())

	_, err = NewProvider(llm.ProviderConfig{Type: "unknown"})
	assert.Error(t, err)
}
