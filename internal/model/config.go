package model

import "time"

// Config is the full runtime configuration tree
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig holds input guard thresholds
type AnalysisConfig struct {
	// MinTextChars rejects documents shorter than this before any processing
	MinTextChars int `yaml:"min_text_chars" mapstructure:"min_text_chars"`

	// MaxQuestionChars rejects questions longer than this
	MaxQuestionChars int `yaml:"max_question_chars" mapstructure:"max_question_chars"`
}

// LLMConfig configures the optional question-answering backend.
// An empty Provider disables the LLM entirely; the keyword fallback
// then answers every question.
type LLMConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", ""
	Model    string `yaml:"model" mapstructure:"model"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`

	Timeout   int `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// RequestsPerSecond rate-limits completion calls (0 = unlimited)
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the in-memory analysis result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinTextChars:     100,
			MaxQuestionChars: 500,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 200,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
