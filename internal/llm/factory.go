package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a new LLM provider based on configuration. When the
// configured rate limit is nonzero, the provider is wrapped so completion
// calls honor it.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	var p Provider
	var err error

	switch provider {
	case "openai":
		p, err = NewOpenAIProvider(config)

	case "anthropic", "claude":
		p, err = NewAnthropicProvider(config)

	case "ollama":
		p, err = NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}

	if err != nil {
		return nil, err
	}

	if config.RequestsPerSecond > 0 {
		p = NewRateLimitedProvider(p, config.RequestsPerSecond, config.Burst)
	}

	return p, nil
}
