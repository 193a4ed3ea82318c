package extract

import (
	"regexp"

	"legalease/internal/model"
)

// FinancialTermExtractor extracts the financial profile of a contract via
// layered regex passes
type FinancialTermExtractor struct {
	amountPatterns   []*regexp.Regexp
	schedulePatterns []*regexp.Regexp
	interestPatterns []*regexp.Regexp
	methodPattern    *regexp.Regexp
}

// NewFinancialTermExtractor creates a financial term extractor with the
// standard pattern layers
func NewFinancialTermExtractor() *FinancialTermExtractor {
	return &FinancialTermExtractor{
		amountPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`),
			regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d{2})?\s*dollars?`),
			regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*\s*USD`),
		},
		schedulePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:within|due\s+in|payable\s+in|paid\s+within)\s+(\d+)\s*(?:days?|weeks?|months?)`),
			regexp.MustCompile(`(?i)net\s+(\d+)`),
			regexp.MustCompile(`(?i)(\d+)\s*(?:days?|weeks?|months?)\s*(?:after|from|following)`),
			regexp.MustCompile(`(?i)(?:monthly|quarterly|annually|weekly)\s+payments?`),
		},
		interestPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s*(?:interest|rate|annual|per\s+annum)`),
			regexp.MustCompile(`(?i)interest.*?(\d+(?:\.\d+)?)\s*(?:percent|%)`),
		},
		methodPattern: regexp.MustCompile(`(?i)\b(?:wire transfer|check|cash|credit card|bank transfer|ACH|electronic transfer)\b`),
	}
}

// Extract pulls amounts, payment schedules, interest rates and payment
// methods out of the text. Pattern variants are concatenated before a final
// first-seen-order de-dup pass; every field is capped at 10 entries.
func (f *FinancialTermExtractor) Extract(text string) model.FinancialTerms {
	var terms model.FinancialTerms

	for _, p := range f.amountPatterns {
		terms.Amounts = append(terms.Amounts, p.FindAllString(text, -1)...)
	}

	// When a schedule pattern has a capture group, keep only the captured
	// numeral; otherwise keep the raw frequency-word match.
	for _, p := range f.schedulePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 && m[1] != "" {
				terms.PaymentSchedule = append(terms.PaymentSchedule, m[1])
			} else {
				terms.PaymentSchedule = append(terms.PaymentSchedule, m[0])
			}
		}
	}

	for _, p := range f.interestPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			terms.InterestRates = append(terms.InterestRates, m[1]+"%")
		}
	}

	terms.PaymentMethods = f.methodPattern.FindAllString(text, -1)

	terms.Amounts = finalizeList(terms.Amounts)
	terms.PaymentSchedule = finalizeList(terms.PaymentSchedule)
	terms.Penalties = finalizeList(terms.Penalties)
	terms.InterestRates = finalizeList(terms.InterestRates)
	terms.Currencies = finalizeList(terms.Currencies)
	terms.PaymentMethods = finalizeList(terms.PaymentMethods)

	return terms
}

func finalizeList(items []string) []string {
	out := capStrings(dedupeStrings(items), 10)
	if out == nil {
		out = []string{}
	}
	return out
}
