package graphrag

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/llm"
	"github.com/manoharask/msme/internal/types"
)

// Pipeline error codes
const (
	ErrCodeTranslationFailed types.ErrorCode = "RAG_TRANSLATION_FAILED"
	ErrCodeExecutionFailed   types.ErrorCode = "RAG_EXECUTION_FAILED"
	ErrCodeCorrectionFailed  types.ErrorCode = "RAG_CORRECTION_FAILED"
	ErrCodeGroundingFailed   types.ErrorCode = "RAG_GROUNDING_FAILED"
	ErrCodePipelineFailed    types.ErrorCode = "RAG_PIPELINE_FAILED"
)

const (
	// resultsCap bounds how many rows are fed to the grounding step.
	resultsCap = 25

	cypherMaxTokens = 600
	answerMaxTokens = 700

	// Translation and correction run deterministic-leaning; grounding gets a
	// small positive temperature for natural phrasing.
	translateTemperature = 0.0
	groundTemperature    = 0.1
)

// apologyMessage is the fixed user-safe fallback. Internal error detail
// never reaches the end user as primary content.
const apologyMessage = "I'm sorry, I wasn't able to find an answer for that. " +
	"Could you try rephrasing your question? You can ask me about registered enterprises, " +
	"service providers, product categories, cities, ratings, or export readiness."

// Response is the result of one question through the pipeline. Err is nil
// only on full success; when set it is retained for an operator debug view,
// never shown to the end user.
type Response struct {
	Answer  string           `json:"answer"`
	Cypher  string           `json:"cypher"`
	Results []map[string]any `json:"results"`
	Err     error            `json:"-"`
}

// Pipeline answers free-form questions about the graph:
//
//  1. Translate the question into a single read-only Cypher query.
//  2. Execute it against the graph.
//  3. On failure, ask the model to correct the query once and re-execute.
//  4. Ground a natural-language answer strictly in the returned rows.
//
// The stages are strictly sequential; grounding never starts before
// execution completes.
type Pipeline struct {
	provider llm.Provider
	client   graph.GraphClient
	model    string
	logger   *slog.Logger
}

// NewPipeline creates a question pipeline over the given provider and graph
// client. model selects the completion model for all three calls.
func NewPipeline(provider llm.Provider, client graph.GraphClient, model string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		provider: provider,
		client:   client,
		model:    model,
		logger:   logger,
	}
}

// Ask runs the full pipeline for one question. It never panics past its
// boundary: every failure collapses into the apology response with the
// cause retained on Err.
func (p *Pipeline) Ask(ctx context.Context, question string) (response Response) {
	var cypher string

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panic recovered", "question", question, "panic", r)
			response = p.fallback(cypher, types.NewError(ErrCodePipelineFailed,
				fmt.Sprintf("unexpected failure: %v", r)))
		}
	}()

	cypher, err := p.translate(ctx, question)
	if err != nil {
		return p.fallback(cypher, err)
	}

	results, err := p.execute(ctx, cypher)
	if err != nil {
		// Self-correction: one bounded retry, never a third attempt.
		p.logger.Warn("generated query failed, attempting correction",
			"question", question, "error", err)

		fixed, corrErr := p.correct(ctx, question, cypher, err)
		if corrErr != nil {
			return p.fallback(cypher, corrErr)
		}
		cypher = fixed

		results, err = p.execute(ctx, cypher)
		if err != nil {
			return p.fallback(cypher, err)
		}
	}

	answer, err := p.ground(ctx, question, results)
	if err != nil {
		return p.fallback(cypher, err)
	}

	return Response{
		Answer:  answer,
		Cypher:  cypher,
		Results: results,
		Err:     nil,
	}
}

// translate converts the question into a single Cypher query.
func (p *Pipeline) translate(ctx context.Context, question string) (string, error) {
	req := llm.NewCompletionRequest(p.model,
		[]llm.Message{
			llm.NewUserMessage(fmt.Sprintf("Question: %s", question)),
		},
		llm.WithSystemPrompt(cypherSystemPrompt),
		llm.WithTemperature(translateTemperature),
		llm.WithMaxTokens(cypherMaxTokens),
	)

	resp, err := p.provider.Complete(ctx, req)
	if err != nil {
		return "", types.WrapError(ErrCodeTranslationFailed,
			"question translation failed", err)
	}

	return cleanCypher(resp.Message.Content), nil
}

// correct asks the model to repair a failed query given the execution error.
func (p *Pipeline) correct(ctx context.Context, question, cypher string, execErr error) (string, error) {
	req := llm.NewCompletionRequest(p.model,
		[]llm.Message{
			llm.NewUserMessage(fmt.Sprintf("Question: %s", question)),
			llm.NewAssistantMessage(cypher),
			llm.NewUserMessage(fmt.Sprintf(
				"The query failed with this error:\n%v\n\nFix the Cypher query. Output ONLY the corrected query.",
				execErr)),
		},
		llm.WithSystemPrompt(cypherSystemPrompt),
		llm.WithTemperature(translateTemperature),
		llm.WithMaxTokens(cypherMaxTokens),
	)

	resp, err := p.provider.Complete(ctx, req)
	if err != nil {
		return "", types.WrapError(ErrCodeCorrectionFailed,
			"query correction failed", err)
	}

	return cleanCypher(resp.Message.Content), nil
}

// execute runs the generated query against the graph.
func (p *Pipeline) execute(ctx context.Context, cypher string) ([]map[string]any, error) {
	result, err := p.client.Query(ctx, cypher, nil)
	if err != nil {
		return nil, types.WrapError(ErrCodeExecutionFailed,
			"query execution failed", err)
	}
	return result.Records, nil
}

// ground produces the final answer strictly from the returned rows.
func (p *Pipeline) ground(ctx context.Context, question string, results []map[string]any) (string, error) {
	capped := results
	if len(capped) > resultsCap {
		capped = capped[:resultsCap]
	}

	resultsText := "[]"
	if len(capped) > 0 {
		data, err := json.Marshal(capped)
		if err != nil {
			return "", types.WrapError(ErrCodeGroundingFailed,
				"failed to serialize results", err)
		}
		resultsText = string(data)
	}

	req := llm.NewCompletionRequest(p.model,
		[]llm.Message{
			llm.NewUserMessage(fmt.Sprintf(
				"Question: %s\n\nDatabase results:\n%s\n\nProvide a helpful, factual answer based strictly on these results.",
				question, resultsText)),
		},
		llm.WithSystemPrompt(answerSystemPrompt),
		llm.WithTemperature(groundTemperature),
		llm.WithMaxTokens(answerMaxTokens),
	)

	resp, err := p.provider.Complete(ctx, req)
	if err != nil {
		return "", types.WrapError(ErrCodeGroundingFailed,
			"answer grounding failed", err)
	}

	return resp.Message.Content, nil
}

// fallback wraps any stage failure into the fixed apology shape.
func (p *Pipeline) fallback(cypher string, err error) Response {
	p.logger.Warn("pipeline failed", "error", err)

	return Response{
		Answer:  apologyMessage,
		Cypher:  cypher,
		Results: []map[string]any{},
		Err:     types.WrapError(ErrCodePipelineFailed, "question pipeline failed", err),
	}
}
