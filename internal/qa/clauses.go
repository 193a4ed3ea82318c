package qa

import (
	"regexp"
	"strings"
)

var clauseSplitRe = regexp.MustCompile(`[.!?]+`)

// followUpCandidates are the canned follow-up questions offered after an
// LLM answer. Candidates too similar to the original question are dropped.
var followUpCandidates = []string{
	"What are the key payment obligations?",
	"How can this contract be terminated?",
	"What happens if there's a breach of contract?",
	"Are there any liability limitations?",
	"What are the warranty provisions?",
	"How are disputes resolved?",
	"What are the renewal terms?",
	"What are the confidentiality requirements?",
	"What intellectual property rights are involved?",
	"What are the performance standards?",
}

// relevantClauses returns up to 5 sentences from the context that share at
// least 2 lowercase words with the question. Each clause is truncated to
// 250 chars.
func relevantClauses(contractContext, question string) []string {
	questionWords := wordSet(strings.ToLower(question))

	clauses := []string{}
	for _, sentence := range clauseSplitRe.Split(contractContext, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 30 {
			continue
		}

		overlap := overlapCount(questionWords, wordSet(strings.ToLower(sentence)))
		if overlap < 2 {
			continue
		}

		if len(sentence) > 250 {
			sentence = sentence[:250] + "..."
		}
		clauses = append(clauses, sentence)
		if len(clauses) == 5 {
			break
		}
	}

	return clauses
}

// followUpQuestions filters the canned candidates, excluding any that share
// 3 or more lowercase words with the original question, capped at 6
func followUpQuestions(originalQuestion string) []string {
	originalWords := wordSet(strings.ToLower(originalQuestion))

	filtered := []string{}
	for _, q := range followUpCandidates {
		if overlapCount(originalWords, wordSet(strings.ToLower(q))) < 3 {
			filtered = append(filtered, q)
			if len(filtered) == 6 {
				break
			}
		}
	}

	return filtered
}

// wordSet splits text on whitespace into a set of words
func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		words[w] = true
	}
	return words
}

// overlapCount counts words present in both sets
func overlapCount(a, b map[string]bool) int {
	count := 0
	for w := range a {
		if b[w] {
			count++
		}
	}
	return count
}
