package score

import (
	"fmt"
	"regexp"
	"strings"

	"legalease/internal/model"
)

// indicator is a phrase whose presence shifts the risk score by a fixed
// signed weight. Negative weights reduce risk.
type indicator struct {
	phrase string
	points int
}

// tier groups indicators by severity. Tiers and indicators are scanned in
// declaration order so reasons come out reproducibly.
type tier struct {
	name       string
	indicators []indicator
}

var penaltyTokenRe = regexp.MustCompile(`\b(?:penalty|penalties)\b`)

// RiskScorer produces a weighted keyword risk assessment for contract text
type RiskScorer struct {
	tiers []tier
}

// NewRiskScorer creates a risk scorer with the standard indicator tiers
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{
		tiers: []tier{
			{"high", []indicator{
				{"unlimited liability", 3},
				{"personal guarantee", 3},
				{"liquidated damages", 3},
				{"specific performance", 3},
				{"criminal liability", 4},
				{"punitive damages", 3},
				{"indemnify", 2},
				{"hold harmless", 2},
				{"strict liability", 3},
				{"immediate termination", 2},
				{"no cure period", 3},
				{"forfeiture", 3},
			}},
			{"medium", []indicator{
				{"limitation of liability", -1},
				{"material breach", 2},
				{"cure period", -1},
				{"force majeure", -1},
				{"reasonable efforts", 1},
				{"best efforts", 2},
				{"consequential damages", 2},
				{"indirect damages", 2},
				{"arbitration", -1},
				{"mediation", -1},
			}},
			{"low", []indicator{
				{"mutual", -1},
				{"standard terms", -1},
				{"industry standard", -1},
				{"reasonable", -1},
				{"good faith", -1},
				{"fair dealing", -1},
				{"customary", -1},
				{"typical", -1},
			}},
		},
	}
}

// Assess scores the text against every indicator tier plus fixed bonus
// rules. Level thresholds use the raw score; the reported score is clamped
// to a minimum of 0. Reasons are capped at 10 and detailed analysis at 8,
// with canned fallbacks when nothing matched.
func (s *RiskScorer) Assess(text string) model.RiskAssessment {
	lower := strings.ToLower(text)

	score := 0
	var reasons []string
	var detailed []model.RiskFactor

	for _, t := range s.tiers {
		for _, ind := range t.indicators {
			if !strings.Contains(lower, ind.phrase) {
				continue
			}
			score += ind.points

			direction := "increases"
			points := ind.points
			if points < 0 {
				direction = "reduces"
				points = -points
			}

			reasons = append(reasons, fmt.Sprintf("Found '%s' which %s risk", ind.phrase, direction))
			detailed = append(detailed, model.RiskFactor{
				Factor:  ind.phrase,
				Impact:  fmt.Sprintf("%s risk by %d points", direction, points),
				Context: truncateContext(contextWindow(text, ind.phrase, 100), 150),
			})
		}
	}

	// Fixed bonus rules on top of the tier scan
	if strings.Contains(lower, "without limitation") {
		score += 2
		reasons = append(reasons, "Broad liability clause without limitations")
		detailed = append(detailed, model.RiskFactor{
			Factor:  "without limitation",
			Impact:  "increases risk by 2 points",
			Context: "Broad liability exposure identified",
		})
	}
	if strings.Contains(lower, "at will") {
		score += 1
		reasons = append(reasons, "At-will provisions increase uncertainty")
	}
	if len(penaltyTokenRe.FindAllString(lower, -1)) > 2 {
		score += 2
		reasons = append(reasons, "Multiple penalty clauses identified")
	}

	// Level decision uses the pre-clamp score
	var level model.RiskLevel
	switch {
	case score >= 8:
		level = model.RiskHigh
	case score >= 4:
		level = model.RiskMedium
	case score >= 0:
		level = model.RiskLow
	default:
		level = model.RiskVeryLow
	}

	reported := score
	if reported < 0 {
		reported = 0
	}

	if len(reasons) == 0 {
		reasons = []string{"Standard contract terms with typical risk level"}
	}
	if len(detailed) == 0 {
		detailed = []model.RiskFactor{{
			Factor:  "general terms",
			Impact:  "standard risk level",
			Context: "No specific high-risk factors identified",
		}}
	}
	if len(reasons) > 10 {
		reasons = reasons[:10]
	}
	if len(detailed) > 8 {
		detailed = detailed[:8]
	}

	return model.RiskAssessment{
		RiskLevel:        level,
		RiskScore:        reported,
		Reasons:          reasons,
		DetailedAnalysis: detailed,
	}
}

// contextWindow extracts text around the first case-insensitive occurrence
// of phrase, capped at 200 chars
func contextWindow(text, phrase string, window int) string {
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

func truncateContext(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
