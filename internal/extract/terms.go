package extract

import (
	"strings"
	"unicode"

	"legalease/internal/model"
)

// glossaryEntry is one static term→definition pair. Order matters: found
// terms are reported in table order.
type glossaryEntry struct {
	term       string
	definition string
}

// TermGlossary matches a static table of legal terms against document text
type TermGlossary struct {
	entries []glossaryEntry
}

// NewTermGlossary creates the standard legal term glossary
func NewTermGlossary() *TermGlossary {
	return &TermGlossary{
		entries: []glossaryEntry{
			{"whereas", "since; considering that"},
			{"hereby", "by this document"},
			{"herein", "in this document"},
			{"hereinafter", "from now on in this document"},
			{"heretofore", "before this time"},
			{"thereafter", "after that time"},
			{"notwithstanding", "despite; in spite of"},
			{"pursuant to", "according to; in accordance with"},
			{"in consideration of", "in exchange for"},
			{"covenant", "legally binding promise"},
			{"indemnify", "protect from loss or damage"},
			{"liquidated damages", "predetermined compensation for breach"},
			{"force majeure", "unforeseeable circumstances beyond control"},
			{"breach", "violation of contract terms"},
			{"cure", "fix or remedy a problem"},
			{"default", "failure to meet obligations"},
			{"termination", "ending of the contract"},
			{"void", "having no legal effect"},
			{"voidable", "can be made void under certain conditions"},
			{"severability", "if one part is invalid, the rest remains valid"},
			{"waiver", "giving up a right voluntarily"},
			{"assignment", "transfer of rights to another party"},
			{"novation", "replacement of a contract with a new one"},
			{"rescission", "cancellation of a contract"},
			{"specific performance", "court order to fulfill contract exactly"},
			{"injunctive relief", "court order to do or stop doing something"},
			{"damages", "monetary compensation for loss"},
			{"consequential damages", "indirect losses resulting from breach"},
			{"incidental damages", "additional costs due to breach"},
			{"punitive damages", "punishment damages beyond actual loss"},
			{"mitigation", "reducing the amount of damages"},
			{"material breach", "serious violation affecting the contract's essence"},
			{"anticipatory breach", "indication that breach will occur in future"},
			{"substantial performance", "performance that meets essential requirements"},
			{"conditions precedent", "events that must occur before obligations arise"},
			{"conditions subsequent", "events that end existing obligations"},
			{"representations", "statements of fact made to induce contract formation"},
			{"warranties", "promises about the quality or condition of something"},
			{"indemnification", "compensation for harm or loss"},
			{"hold harmless", "agreement not to hold someone responsible"},
			{"liability", "legal responsibility for damages"},
			{"limitation of liability", "restriction on the amount of responsibility"},
			{"arbitration", "dispute resolution outside of court"},
			{"mediation", "assisted negotiation to resolve disputes"},
			{"jurisdiction", "authority of a court to hear a case"},
			{"governing law", "which state or country's laws apply"},
			{"venue", "location where legal proceedings take place"},
			{"statute of limitations", "time limit for bringing legal action"},
			{"confidentiality", "obligation to keep information secret"},
			{"non-disclosure", "agreement not to reveal information"},
			{"proprietary", "privately owned or exclusive"},
			{"intellectual property", "creations of the mind (patents, trademarks, etc.)"},
			{"trade secret", "confidential business information"},
			{"non-compete", "agreement not to compete with former employer"},
			{"non-solicitation", "agreement not to recruit employees or customers"},
			{"exclusivity", "sole rights to something"},
			{"royalty", "payment for use of property or rights"},
			{"escrow", "third party holds money/documents until conditions are met"},
			{"fiduciary", "relationship of trust and confidence"},
			{"due diligence", "reasonable investigation or care"},
			{"good faith", "honest intention and fair dealing"},
			{"best efforts", "maximum effort reasonably possible"},
			{"reasonable efforts", "efforts that a reasonable person would make"},
			{"time is of the essence", "deadlines are critically important"},
		},
	}
}

// defaultKeyTerms is the canned fallback when no glossary term matches.
// Never return an empty list: the caller always gets something to show.
func defaultKeyTerms() []model.KeyTerm {
	return []model.KeyTerm{
		{
			Term:       "Agreement",
			Definition: "A mutual understanding between parties",
			Context:    "This agreement establishes terms and conditions",
		},
		{
			Term:       "Party",
			Definition: "An individual or entity entering into a contract",
			Context:    "Each party has rights and obligations",
		},
		{
			Term:       "Terms",
			Definition: "Conditions and provisions of a contract",
			Context:    "The terms of this contract are binding",
		},
	}
}

// Extract returns every glossary term present in the text (case-insensitive
// substring), with its definition and an 80-char context window, capped at
// 15. Returns the three default terms when nothing matched.
func (g *TermGlossary) Extract(text string) []model.KeyTerm {
	lower := strings.ToLower(text)

	var found []model.KeyTerm
	for _, e := range g.entries {
		if strings.Contains(lower, e.term) {
			found = append(found, model.KeyTerm{
				Term:       titleCase(e.term),
				Definition: e.definition,
				Context:    contextAround(text, e.term, 80),
			})
		}
	}

	if len(found) == 0 {
		return defaultKeyTerms()
	}
	if len(found) > 15 {
		found = found[:15]
	}
	return found
}

// titleCase uppercases the first letter of every word, where a word starts
// after any non-letter rune
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
