package extract

import (
	"regexp"
	"strings"
)

// archetype pairs a contract type label with its keyword vote set and the
// fallback subject phrase used when no subject pattern matches
type archetype struct {
	name     string
	keywords []string
	subject  string
}

// ContractTypeClassifier assigns one of ten contract archetypes by keyword
// voting and extracts the contract's main subject
type ContractTypeClassifier struct {
	archetypes      []archetype
	subjectPatterns []*regexp.Regexp
}

// NewContractTypeClassifier creates a classifier with the standard archetype
// vocabulary
func NewContractTypeClassifier() *ContractTypeClassifier {
	return &ContractTypeClassifier{
		archetypes: []archetype{
			{"service agreement", []string{"service", "services", "provide", "perform", "consulting"}, "professional services and consulting"},
			{"employment contract", []string{"employment", "employee", "employer", "salary", "benefits", "job"}, "employment relationship and duties"},
			{"lease agreement", []string{"lease", "rent", "tenant", "landlord", "property", "premises"}, "property rental and occupancy"},
			{"purchase agreement", []string{"purchase", "buy", "sell", "goods", "product", "merchandise"}, "goods purchase and delivery"},
			{"license agreement", []string{"license", "licensing", "intellectual property", "software", "patent"}, "intellectual property licensing"},
			{"partnership agreement", []string{"partnership", "partner", "joint venture", "collaborate"}, "business partnership and collaboration"},
			{"non-disclosure agreement", []string{"confidential", "non-disclosure", "nda", "proprietary"}, "confidential information protection"},
			{"loan agreement", []string{"loan", "lend", "borrow", "credit", "debt", "principal"}, "financial lending and repayment"},
			{"construction contract", []string{"construction", "build", "contractor", "materials", "project"}, "construction project and specifications"},
			{"supply agreement", []string{"supply", "supplier", "deliver", "goods", "materials"}, "goods supply and delivery"},
		},
		subjectPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:for the|regarding the|concerning the|related to the)\s+([^.]{10,50})`),
			regexp.MustCompile(`(?i)(?:provision of|supply of|delivery of|performance of)\s+([^.]{10,50})`),
			regexp.MustCompile(`(?i)this agreement covers\s+([^.]{10,50})`),
			regexp.MustCompile(`(?i)the purpose of this agreement is\s+([^.]{10,50})`),
		},
	}
}

// Classify returns the archetype whose keywords appear most often as
// substrings of the lowercased text, or "general agreement" when no keyword
// matched at all. Ties go to the first archetype in declaration order.
func (c *ContractTypeClassifier) Classify(text string) string {
	lower := strings.ToLower(text)

	best := "general agreement"
	bestScore := 0
	for _, a := range c.archetypes {
		score := 0
		for _, kw := range a.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = a.name
			bestScore = score
		}
	}

	return best
}

// MainSubject extracts the contract's subject matter: the first capture of
// four ordered explanatory-phrase patterns, truncated to 100 chars, falling
// back to a static per-archetype subject phrase.
func (c *ContractTypeClassifier) MainSubject(text, contractType string) string {
	for _, p := range c.subjectPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return truncate(strings.TrimSpace(m[1]), 100)
		}
	}

	for _, a := range c.archetypes {
		if a.name == contractType {
			return a.subject
		}
	}
	return "business relationship and obligations"
}
