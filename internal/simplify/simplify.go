package simplify

import "regexp"

// rule is one literal legal-phrase to plain-phrase substitution
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Simplifier rewrites legal boilerplate into plain English with a fixed,
// ordered list of literal case-insensitive substitutions. Rules run
// sequentially in table order, so a later rule can act on an earlier rule's
// output. Rule order is load-bearing: "shall" runs before "shall not", which
// makes the "shall not" rule unreachable ("shall not" already became
// "must not").
type Simplifier struct {
	rules []rule
}

// NewSimplifier creates a simplifier with the standard substitution table
func NewSimplifier() *Simplifier {
	table := []struct{ legal, plain string }{
		{"hereinafter", "from now on"},
		{"heretofore", "before this"},
		{"whereas", "since"},
		{"hereby", "by this document"},
		{"thereof", "of that"},
		{"wherein", "in which"},
		{"notwithstanding", "despite"},
		{"pursuant to", "according to"},
		{"in consideration of", "in exchange for"},
		{"force majeure", "unforeseeable circumstances"},
		{"liquidated damages", "pre-agreed compensation"},
		{"indemnify", "protect from loss"},
		{"hold harmless", "not hold responsible"},
		{"covenant", "promise"},
		{"assign", "transfer"},
		{"breach", "break the agreement"},
		{"cure", "fix the problem"},
		{"default", "fail to meet obligations"},
		{"remedy", "solution"},
		{"waiver", "giving up a right"},
		{"perpetuity", "forever"},
		{"forthwith", "immediately"},
		{"inter alia", "among other things"},
		{"shall", "must"},
		{"shall not", "must not"},
	}

	rules := make([]rule, len(table))
	for i, t := range table {
		rules[i] = rule{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t.legal)),
			replacement: t.plain,
		}
	}

	return &Simplifier{rules: rules}
}

// Simplify applies every substitution rule to the text, one full pass per
// rule in table order
func (s *Simplifier) Simplify(text string) string {
	result := text
	for _, r := range s.rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}
