package extract

import (
	"strings"

	"legalease/internal/model"
)

// noObligations is the placeholder inserted when a category matched nothing.
// Empty categories are never shown to the caller as empty lists.
const noObligations = "No specific obligations identified in this category"

// ObligationExtractor classifies sentences containing deontic trigger words
// into non-exclusive obligation categories
type ObligationExtractor struct {
	triggers    []string
	critical    []string
	payment     []string
	performance []string
}

// NewObligationExtractor creates an obligation extractor with the standard
// trigger vocabulary
func NewObligationExtractor() *ObligationExtractor {
	return &ObligationExtractor{
		triggers: []string{
			"shall", "must", "will", "agrees to", "undertakes to", "commits to",
			"responsible for", "liable for", "duty to", "obligation to",
			"required to", "bound to", "covenant to",
		},
		critical:    []string{"payment", "deliver", "complete", "maintain", "comply", "perform", "provide"},
		payment:     []string{"pay", "payment", "remit", "compensation", "fee", "amount", "invoice"},
		performance: []string{"deliver", "perform", "complete", "execute", "provide", "supply"},
	}
}

// Extract returns the document's obligation sentences grouped by category.
// A sentence can land in several categories. Each category is de-duplicated
// in order, capped at 10, and replaced by a placeholder when empty.
func (e *ObligationExtractor) Extract(text string) model.Obligations {
	var obligations model.Obligations

	for _, sentence := range splitSentences(text) {
		if len(sentence) < 20 {
			continue
		}
		lower := strings.ToLower(sentence)

		if !containsAny(lower, e.triggers) {
			continue
		}

		clean := truncate(sentence, 300)
		obligations.All = append(obligations.All, clean)

		if containsAny(lower, e.critical) {
			obligations.Critical = append(obligations.Critical, clean)
		}
		if containsAny(lower, e.payment) {
			obligations.Payment = append(obligations.Payment, clean)
		}
		if containsAny(lower, e.performance) {
			obligations.Performance = append(obligations.Performance, clean)
		}
	}

	obligations.All = finalizeObligations(obligations.All)
	obligations.Critical = finalizeObligations(obligations.Critical)
	obligations.Payment = finalizeObligations(obligations.Payment)
	obligations.Performance = finalizeObligations(obligations.Performance)

	return obligations
}

func finalizeObligations(items []string) []string {
	if len(items) == 0 {
		return []string{noObligations}
	}
	return capStrings(dedupeStrings(items), 10)
}
