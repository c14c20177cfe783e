package graphrag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/llm/providers"
)

const testModel = "gpt-4o-mini"

func TestAsk_SuccessfulPath(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"MATCH (s:SNP) WITH s ORDER BY s.rating DESC LIMIT 3 RETURN s.name AS name",
		"The top SNP is **TextileHub Bengaluru** with a rating of 92%.",
	})
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryResult(graph.QueryResult{
		Records: []map[string]any{
			{"name": "TextileHub Bengaluru", "rating_pct": int64(92)},
		},
	})

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "Which is the best SNP?")

	require.NoError(t, resp.Err)
	assert.Equal(t, "The top SNP is **TextileHub Bengaluru** with a rating of 92%.", resp.Answer)
	assert.Contains(t, resp.Cypher, "MATCH (s:SNP)")
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "TextileHub Bengaluru", resp.Results[0]["name"])

	// Translate then ground: exactly two completions, one graph read.
	calls := mockLLM.Calls()
	require.Len(t, calls, 2)
	assert.Len(t, mockGraph.GetCallsByMethod("Query"), 1)

	// Translation is deterministic-leaning; grounding gets a small positive
	// temperature.
	assert.Zero(t, calls[0].Request.Temperature)
	assert.Equal(t, groundTemperature, calls[1].Request.Temperature)

	// The grounding request carries the question and the raw rows.
	grounding := calls[1].Request.Messages[0].Content
	assert.Contains(t, grounding, "Which is the best SNP?")
	assert.Contains(t, grounding, "TextileHub Bengaluru")
}

func TestAsk_StripsCodeFences(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"```cypher\nMATCH (m:MSE) RETURN count(m) AS total\n```",
		"There are 40 registered MSEs.",
	})
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryResult(graph.QueryResult{
		Records: []map[string]any{{"total": int64(40)}},
	})

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "How many MSEs are registered?")

	require.NoError(t, resp.Err)
	assert.Equal(t, "MATCH (m:MSE) RETURN count(m) AS total", resp.Cypher)

	executed := mockGraph.GetCallsByMethod("Query")[0].Args[0].(string)
	assert.NotContains(t, executed, "```")
}

func TestAsk_EmptyResultsStillAnswered(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"MATCH (m:MSE)-[:OFFERS]->(c:Category) WHERE toLower(c.name) CONTAINS 'aerospace' RETURN DISTINCT m LIMIT 25",
		"I looked for aerospace enterprises but nothing matched. You could try a broader term like manufacturing, or a different city.",
	})
	mockGraph := graph.NewMockGraphClient()

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "Show me aerospace MSEs")

	require.NoError(t, resp.Err)
	assert.NotEmpty(t, resp.Answer)
	assert.Empty(t, resp.Results)

	// The grounding step receives an explicit empty result marker.
	calls := mockLLM.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1].Request.Messages[0].Content, "[]")
}

func TestAsk_SelfCorrectionSucceeds(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"MATCH (s:SNP) RETURN DISTINCT s ORDER BY s.rating",
		"MATCH (s:SNP) WITH DISTINCT s ORDER BY s.rating DESC RETURN s.name AS name",
		"**LeatherWorks Chennai** leads with a 95% rating.",
	})
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryError(errors.New("syntax error: ORDER BY with DISTINCT projection"))
	mockGraph.AddQueryResult(graph.QueryResult{
		Records: []map[string]any{{"name": "LeatherWorks Chennai"}},
	})

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "Rank SNPs by rating")

	require.NoError(t, resp.Err)
	assert.Contains(t, resp.Cypher, "WITH DISTINCT s")
	require.Len(t, resp.Results, 1)

	// translate + correct + ground
	calls := mockLLM.Calls()
	require.Len(t, calls, 3)
	assert.Len(t, mockGraph.GetCallsByMethod("Query"), 2)

	// The correction request includes the failed query and the error text.
	correction := calls[1].Request
	require.Len(t, correction.Messages, 3)
	assert.Contains(t, correction.Messages[1].Content, "RETURN DISTINCT s ORDER BY")
	assert.Contains(t, correction.Messages[2].Content, "syntax error")
}

func TestAsk_SecondFailureStopsRetrying(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"BROKEN QUERY",
		"STILL BROKEN",
	})
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryError(errors.New("invalid input"))
	mockGraph.AddQueryError(errors.New("invalid input again"))

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "Something unanswerable")

	// Exactly two execution attempts, never a third.
	assert.Len(t, mockGraph.GetCallsByMethod("Query"), 2)
	// Translate and correct only; grounding never runs.
	assert.Equal(t, 2, mockLLM.CallCount())

	assert.Equal(t, apologyMessage, resp.Answer)
	assert.Empty(t, resp.Results)
	require.Error(t, resp.Err)
}

func TestAsk_TranslationFailure(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{"unused"}).FailAt(0, errors.New("rate limit"))
	mockGraph := graph.NewMockGraphClient()

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "Anything")

	assert.Equal(t, apologyMessage, resp.Answer)
	assert.Empty(t, resp.Results)
	require.Error(t, resp.Err)
	assert.Empty(t, mockGraph.GetCallsByMethod("Query"))
}

func TestAsk_GroundingFailure(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{
		"MATCH (m:MSE) RETURN count(m) AS total",
		"unused",
	}).FailAt(1, errors.New("provider unavailable"))
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryResult(graph.QueryResult{
		Records: []map[string]any{{"total": int64(40)}},
	})

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "How many MSEs?")

	assert.Equal(t, apologyMessage, resp.Answer)
	require.Error(t, resp.Err)
}

func TestAsk_ApologyNeverMentionsTechnology(t *testing.T) {
	mockLLM := providers.NewMockProvider([]string{"unused"}).FailAt(0, errors.New("boom"))
	p := NewPipeline(mockLLM, graph.NewMockGraphClient(), testModel, nil)

	resp := p.Ask(context.Background(), "What is out there?")

	lower := strings.ToLower(resp.Answer)
	for _, term := range []string{"cypher", "neo4j", "query", "database", "graph"} {
		assert.NotContains(t, lower, term)
	}
}

func TestAsk_ResultRowsCappedForGrounding(t *testing.T) {
	records := make([]map[string]any, 60)
	for i := range records {
		records[i] = map[string]any{"name": "MSE", "idx": int64(i)}
	}

	mockLLM := providers.NewMockProvider([]string{
		"MATCH (m:MSE) RETURN m.name AS name",
		"Here are the enterprises.",
	})
	mockGraph := graph.NewMockGraphClient()
	mockGraph.AddQueryResult(graph.QueryResult{Records: records})

	p := NewPipeline(mockLLM, mockGraph, testModel, nil)
	resp := p.Ask(context.Background(), "List all MSEs")

	require.NoError(t, resp.Err)
	// The full result set comes back to the caller.
	assert.Len(t, resp.Results, 60)

	// But the grounding prompt sees at most the cap.
	grounding := mockLLM.Calls()[1].Request.Messages[0].Content
	assert.Contains(t, grounding, `"idx":24`)
	assert.NotContains(t, grounding, `"idx":25`)
}

func TestCleanCypher(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "MATCH (n) RETURN n", "MATCH (n) RETURN n"},
		{"plain fences", "```\nMATCH (n) RETURN n\n```", "MATCH (n) RETURN n"},
		{"cypher fences", "```cypher\nMATCH (n) RETURN n\n```", "MATCH (n) RETURN n"},
		{"uppercase tag", "```CYPHER\nMATCH (n) RETURN n\n```", "MATCH (n) RETURN n"},
		{"surrounding whitespace", "  MATCH (n) RETURN n  ", "MATCH (n) RETURN n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanCypher(tt.in))
		})
	}
}
