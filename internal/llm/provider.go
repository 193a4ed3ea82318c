package llm

import (
	"context"
	"fmt"

	"legalease/internal/model"
)

// Provider defines the interface for LLM completion backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a short completion for a contract question
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for a QA completion
type CompletionRequest struct {
	// Question is the user's verbatim question
	Question string

	// Context is the contract text the answer must be grounded in
	Context string

	// Prompt is an optional custom prompt (if empty, built from
	// Question/Context)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the model output
type CompletionResponse struct {
	// Text is the literal model output
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond rate-limits completion calls (0 = unlimited)
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 200,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:          modelConfig.Provider,
		Model:             modelConfig.Model,
		APIKey:            modelConfig.APIKey,
		BaseURL:           modelConfig.BaseURL,
		Timeout:           modelConfig.Timeout,
		MaxTokens:         modelConfig.MaxTokens,
		RequestsPerSecond: modelConfig.RequestsPerSecond,
		Burst:             modelConfig.Burst,
	}
}

// maxPromptContext caps how much contract text goes into the prompt
const maxPromptContext = 2000

// systemPrompt constrains the model to concise, grounded answers
const systemPrompt = "You are a legal analyst who answers questions about contracts concisely, based solely on the provided contract excerpt."

// BuildQAPrompt constructs the default prompt for a contract question.
// The context is truncated to keep the prompt small; the question is
// included verbatim.
func BuildQAPrompt(question, contractContext string) string {
	if len(contractContext) > maxPromptContext {
		contractContext = contractContext[:maxPromptContext]
	}

	return fmt.Sprintf(`You are a legal analyst. Provide a concise answer (max 3 sentences) to the user's question based solely on the contract excerpt below.

CONTRACT CONTEXT:
%s

USER QUESTION: %s

Answer concisely:`, contractContext, question)
}
