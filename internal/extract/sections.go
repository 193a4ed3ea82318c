package extract

import (
	"strings"

	"legalease/internal/model"
)

// sectionKeywords pairs a section bucket with its keyword set. Order
// matters: on equal nonzero keyword counts the first listed section wins.
type sectionKeywords struct {
	section  model.SectionType
	keywords []string
}

// SectionClassifier assigns each paragraph of a document to the contract
// section whose keywords it matches best
type SectionClassifier struct {
	keywords []sectionKeywords
}

// NewSectionClassifier creates a section classifier with the standard
// contract section vocabulary
func NewSectionClassifier() *SectionClassifier {
	return &SectionClassifier{
		keywords: []sectionKeywords{
			{model.SectionPaymentTerms, []string{
				"payment", "fee", "cost", "amount", "invoice", "billing",
				"due", "remuneration", "compensation", "salary", "wage",
				"price", "consideration", "installment", "deposit",
			}},
			{model.SectionTerminationClauses, []string{
				"termination", "terminate", "expire", "expiration", "end",
				"conclude", "dissolution", "cancellation", "breach", "default",
				"notice period", "wind up",
			}},
			{model.SectionLiabilityLimitations, []string{
				"liability", "damages", "limitation", "limit", "responsible",
				"accountable", "indemnify", "indemnification", "harm",
				"loss", "consequential", "indirect",
			}},
			{model.SectionWarrantyDisclaimers, []string{
				"warranty", "guarantee", "assurance", "as is", "disclaim",
				"merchantability", "fitness", "defect", "condition",
				"representation",
			}},
			{model.SectionConfidentiality, []string{
				"confidential", "non-disclosure", "nda", "proprietary",
				"trade secret", "classified", "private", "sensitive",
			}},
			{model.SectionIntellectualProperty, []string{
				"intellectual property", "copyright", "patent", "trademark",
				"trade secret", "proprietary", "ownership", "license",
				"derivative works",
			}},
			{model.SectionDisputeResolution, []string{
				"dispute", "arbitration", "mediation", "jurisdiction",
				"governing law", "venue", "litigation", "court",
			}},
		},
	}
}

// Classify splits the document into paragraphs and assigns each to exactly
// one section bucket. All eight buckets are always present in the result,
// possibly empty. Paragraphs with no keyword match go to general_terms.
func (c *SectionClassifier) Classify(text string) map[model.SectionType][]string {
	sections := make(map[model.SectionType][]string, len(model.SectionOrder))
	for _, s := range model.SectionOrder {
		sections[s] = []string{}
	}

	paragraphs := splitParagraphs(text, 50)
	if len(paragraphs) == 0 {
		// No blank-line structure: fall back to long sentences
		for _, s := range splitSentences(text) {
			if len(s) > 100 {
				paragraphs = append(paragraphs, s)
			}
		}
	}

	for _, paragraph := range paragraphs {
		lower := strings.ToLower(paragraph)

		best := model.SectionGeneralTerms
		bestCount := 0
		for _, sk := range c.keywords {
			count := 0
			for _, kw := range sk.keywords {
				if strings.Contains(lower, kw) {
					count++
				}
			}
			// Strictly greater: first section in order wins ties
			if count > bestCount {
				best = sk.section
				bestCount = count
			}
		}

		sections[best] = append(sections[best], paragraph)
	}

	return sections
}
