package qa

import (
	"sort"
	"strings"

	"legalease/internal/model"
)

// topic is one question category of the keyword fallback. Question keywords
// classify the question; line keywords select matching context lines.
type topic struct {
	questionKeywords []string
	lineKeywords     []string
	intro            string
	notFound         string
}

// KeywordAnswerer is the deterministic fallback used when no LLM is
// configured or the LLM call failed. Topics are checked in priority order;
// the first match wins.
type KeywordAnswerer struct {
	topics []topic
}

// NewKeywordAnswerer creates a keyword answerer with the standard topic
// vocabulary
func NewKeywordAnswerer() *KeywordAnswerer {
	return &KeywordAnswerer{
		topics: []topic{
			{
				questionKeywords: []string{"payment", "pay", "cost", "fee", "money", "amount"},
				lineKeywords:     []string{"payment", "pay", "fee", "cost", "$", "amount"},
				intro:            "Based on the contract, here are the payment-related terms:",
				notFound:         "No specific payment terms found in this contract.",
			},
			{
				questionKeywords: []string{"terminate", "end", "cancel", "termination"},
				lineKeywords:     []string{"terminate", "termination", "end", "cancel", "expire"},
				intro:            "Regarding termination, the contract states:",
				notFound:         "No specific termination clauses found in this contract.",
			},
			{
				questionKeywords: []string{"risk", "liability", "damage", "harm"},
				lineKeywords:     []string{"liability", "damage", "risk", "harm", "loss", "indemnify"},
				intro:            "Regarding risks and liability:",
				notFound:         "No specific liability or risk clauses found.",
			},
			{
				questionKeywords: []string{"obligation", "duty", "must", "shall", "required"},
				lineKeywords:     []string{"shall", "must", "obligation", "duty", "required", "responsible"},
				intro:            "The contract establishes these obligations:",
				notFound:         "No specific obligations found.",
			},
		},
	}
}

const genericNotFound = "I couldn't find specific information related to your question in this contract. " +
	"Please try asking about payment terms, termination conditions, obligations, or liability provisions."

// fallbackFollowUps is the fixed suggestion list for the keyword path
var fallbackFollowUps = []string{
	"What are the payment terms?",
	"How can this contract be terminated?",
	"What are the main obligations?",
	"What are the liability provisions?",
}

// Answer produces a deterministic answer from the context text.
// Confidence is always 0.7 in this path.
func (k *KeywordAnswerer) Answer(question, contractContext string) *model.Answer {
	questionLower := strings.ToLower(question)

	answer := ""
	for _, t := range k.topics {
		if !matchesAny(questionLower, t.questionKeywords) {
			continue
		}
		answer = k.answerTopic(t, contractContext)
		break
	}

	if answer == "" {
		answer = k.answerGeneric(questionLower, contractContext)
	}

	return &model.Answer{
		Answer:              answer,
		RelevantClauses:     relevantClauses(contractContext, question),
		Confidence:          model.ConfidenceKeyword,
		FollowUpSuggestions: fallbackFollowUps,
	}
}

// answerTopic scans the context line by line for the topic's keywords and
// returns up to 3 matching lines
func (k *KeywordAnswerer) answerTopic(t topic, contractContext string) string {
	var matches []string
	for _, line := range strings.Split(contractContext, "\n") {
		if matchesAny(strings.ToLower(line), t.lineKeywords) {
			matches = append(matches, strings.TrimSpace(line))
			if len(matches) == 3 {
				break
			}
		}
	}

	if len(matches) == 0 {
		return t.notFound
	}
	return t.intro + "\n\n" + strings.Join(matches, "\n\n")
}

// answerGeneric ranks sentences by word overlap with the question and
// returns the top 3 with overlap >= 2. Ties keep original sentence order.
func (k *KeywordAnswerer) answerGeneric(questionLower, contractContext string) string {
	questionWords := wordSet(questionLower)

	type scored struct {
		overlap  int
		sentence string
	}
	var relevant []scored

	for _, sentence := range strings.Split(contractContext, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 20 {
			continue
		}
		overlap := overlapCount(questionWords, wordSet(strings.ToLower(sentence)))
		if overlap >= 2 {
			relevant = append(relevant, scored{overlap, sentence})
		}
	}

	if len(relevant) == 0 {
		return genericNotFound
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].overlap > relevant[j].overlap
	})
	if len(relevant) > 3 {
		relevant = relevant[:3]
	}

	parts := make([]string, len(relevant))
	for i, r := range relevant {
		parts[i] = r.sentence
	}
	return "Based on your question, here are the most relevant parts of the contract:\n\n" +
		strings.Join(parts, "\n\n")
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
