package extract

import "regexp"

// entityPattern pairs an entity type with its regex family
type entityPattern struct {
	name    string
	pattern *regexp.Regexp
}

// EntityExtractor pulls typed entities out of contract text with seven
// independent regex families. Families never cross-validate: an amount
// substring may also match inside a date.
type EntityExtractor struct {
	patterns []entityPattern
}

// NewEntityExtractor creates an entity extractor with the standard pattern
// families
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{
		patterns: []entityPattern{
			{"amounts", regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?|\b\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars?|USD|\$)`)},
			{"dates", regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+\w+\s+\d{4})`)},
			{"percentages", regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?%|\b\d+(?:\.\d+)?\s*percent`)},
			{"timeframes", regexp.MustCompile(`(?i)\b\d+\s*(?:days?|weeks?|months?|years?|hours?)\b`)},
			{"addresses", regexp.MustCompile(`(?i)\b\d+\s+[A-Z][a-zA-Z\s]+(?:Street|St\.?|Avenue|Ave\.?|Road|Rd\.?|Drive|Dr\.?|Lane|Ln\.?)`)},
			{"phone_numbers", regexp.MustCompile(`(?i)\b(?:\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})\b`)},
			{"email_addresses", regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
		},
	}
}

// Extract returns all entity matches grouped by type. Each family is
// de-duplicated in first-seen order and capped at 10 entries.
func (e *EntityExtractor) Extract(text string) map[string][]string {
	entities := make(map[string][]string, len(e.patterns))
	for _, ep := range e.patterns {
		matches := ep.pattern.FindAllString(text, -1)
		unique := capStrings(dedupeStrings(matches), 10)
		if unique == nil {
			unique = []string{}
		}
		entities[ep.name] = unique
	}
	return entities
}
