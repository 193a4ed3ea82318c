package model

// Answer is the result of one question against one context text.
// Ephemeral: one per question, never persisted.
type Answer struct {
	Answer              string   `json:"answer"`
	RelevantClauses     []string `json:"relevant_clauses"`
	Confidence          float64  `json:"confidence"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

// Answer source confidence levels. The LLM path reports 0.9, the
// deterministic keyword fallback always reports 0.7.
const (
	ConfidenceLLM     = 0.9
	ConfidenceKeyword = 0.7
)
