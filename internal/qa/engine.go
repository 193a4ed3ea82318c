package qa

import (
	"context"

	"legalease/internal/llm"
	"legalease/internal/model"
)

// Engine answers free-form questions against contract text. It tries the
// configured LLM first and degrades to the deterministic keyword answerer
// on any failure. LLM errors are absorbed here and never surface to the
// caller.
type Engine struct {
	provider llm.Provider // nil when no LLM is configured
	fallback *KeywordAnswerer
}

// NewEngine creates a QA engine. A nil provider disables the LLM path
// entirely; every question then goes straight to the keyword fallback.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{
		provider: provider,
		fallback: NewKeywordAnswerer(),
	}
}

// HasLLM reports whether an LLM backend is configured
func (e *Engine) HasLLM() bool {
	return e.provider != nil
}

// Answer answers a question against the given contract context
func (e *Engine) Answer(ctx context.Context, question, contractContext string) *model.Answer {
	if e.provider == nil {
		return e.fallback.Answer(question, contractContext)
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Question: question,
		Context:  contractContext,
	})
	if err != nil {
		// Any LLM failure (network, API, timeout) falls back, no retry
		return e.fallback.Answer(question, contractContext)
	}

	return &model.Answer{
		Answer:              resp.Text,
		RelevantClauses:     relevantClauses(contractContext, question),
		Confidence:          model.ConfidenceLLM,
		FollowUpSuggestions: followUpQuestions(question),
	}
}
