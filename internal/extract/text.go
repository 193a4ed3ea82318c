package extract

import (
	"regexp"
	"strings"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
)

// splitSentences splits text on sentence terminators (., !, ?) and trims
// each piece. Empty pieces are dropped; length filtering is up to the caller.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	var sentences []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// splitParagraphs splits text on blank-line boundaries and keeps blocks
// longer than minLen characters
func splitParagraphs(text string, minLen int) []string {
	parts := paragraphSplitRe.Split(text, -1)
	var paragraphs []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minLen {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// contextAround extracts a window of text around the first occurrence of
// phrase (case-insensitive). The result is trimmed and capped at 200 chars
// with an ellipsis. If the phrase is absent, a generic sentence is returned.
func contextAround(text, phrase string, window int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(phrase))
	if idx == -1 {
		return "The term '" + phrase + "' appears in the contract"
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(phrase) + window
	if end > len(text) {
		end = len(text)
	}

	context := strings.TrimSpace(text[start:end])
	if len(context) > 200 {
		return context[:200] + "..."
	}
	return context
}

// dedupeStrings removes duplicates preserving first-seen order
func dedupeStrings(items []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			unique = append(unique, item)
		}
	}
	return unique
}

// capStrings limits a list to at most n entries
func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// truncate shortens s to at most n characters, appending an ellipsis when
// anything was cut
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// containsAny reports whether lower contains any of the keywords as a
// substring. The caller is expected to pass already-lowercased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
