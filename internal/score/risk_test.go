package score

import (
	"strings"
	"testing"

	"legalease/internal/model"
)

func TestRiskScorer_Levels(t *testing.T) {
	s := NewRiskScorer()

	tests := []struct {
		name      string
		text      string
		wantLevel model.RiskLevel
		wantScore int
	}{
		{
			name:      "high",
			text:      "The supplier accepts unlimited liability and gives a personal guarantee, and agrees to hold harmless the client.",
			wantLevel: model.RiskHigh,
			wantScore: 8,
		},
		{
			name:      "medium",
			text:      "Unlimited liability applies here and criminal liability may attach to officers.",
			wantLevel: model.RiskMedium,
			wantScore: 7,
		},
		{
			name:      "low",
			text:      "Forfeiture of the deposit occurs on late delivery.",
			wantLevel: model.RiskLow,
			wantScore: 3,
		},
		{
			name: "negative score clamps to zero",
			// mutual (-1) and good faith (-1): level from the raw -2
			text:      "The parties act in good faith under mutual respect.",
			wantLevel: model.RiskVeryLow,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Assess(tt.text)
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("level = %s, want %s", got.RiskLevel, tt.wantLevel)
			}
			if got.RiskScore != tt.wantScore {
				t.Errorf("score = %d, want %d", got.RiskScore, tt.wantScore)
			}
		})
	}
}

func TestRiskScorer_ReasonFormat(t *testing.T) {
	s := NewRiskScorer()

	got := s.Assess("Forfeiture of the deposit occurs on late delivery.")
	if len(got.Reasons) != 1 {
		t.Fatalf("reasons = %v", got.Reasons)
	}
	if got.Reasons[0] != "Found 'forfeiture' which increases risk" {
		t.Errorf("reason = %q", got.Reasons[0])
	}

	if len(got.DetailedAnalysis) != 1 {
		t.Fatalf("detailed = %v", got.DetailedAnalysis)
	}
	factor := got.DetailedAnalysis[0]
	if factor.Factor != "forfeiture" {
		t.Errorf("factor = %q", factor.Factor)
	}
	if factor.Impact != "increases risk by 3 points" {
		t.Errorf("impact = %q", factor.Impact)
	}
	if !strings.Contains(factor.Context, "Forfeiture of the deposit") {
		t.Errorf("context = %q", factor.Context)
	}
}

func TestRiskScorer_ReducingIndicator(t *testing.T) {
	s := NewRiskScorer()

	got := s.Assess("Disputes go to arbitration in the agreed venue.")
	if got.RiskScore != 0 {
		t.Errorf("score = %d, want clamped 0", got.RiskScore)
	}
	if got.RiskLevel != model.RiskVeryLow {
		t.Errorf("level = %s, want VERY LOW", got.RiskLevel)
	}
	if got.Reasons[0] != "Found 'arbitration' which reduces risk" {
		t.Errorf("reason = %q", got.Reasons[0])
	}
	if got.DetailedAnalysis[0].Impact != "reduces risk by 1 points" {
		t.Errorf("impact = %q", got.DetailedAnalysis[0].Impact)
	}
}

func TestRiskScorer_NoIndicators(t *testing.T) {
	s := NewRiskScorer()

	got := s.Assess("Nothing noteworthy appears in this document.")
	if got.RiskLevel != model.RiskLow || got.RiskScore != 0 {
		t.Errorf("level/score = %s/%d, want LOW/0", got.RiskLevel, got.RiskScore)
	}
	if len(got.Reasons) != 1 || got.Reasons[0] != "Standard contract terms with typical risk level" {
		t.Errorf("reasons = %v", got.Reasons)
	}
	if len(got.DetailedAnalysis) != 1 || got.DetailedAnalysis[0].Factor != "general terms" {
		t.Errorf("detailed = %v", got.DetailedAnalysis)
	}
}

func TestRiskScorer_PenaltyBonus(t *testing.T) {
	s := NewRiskScorer()

	got := s.Assess("A penalty applies. Another penalty applies. A third penalty applies.")
	if got.RiskScore != 2 {
		t.Errorf("score = %d, want 2", got.RiskScore)
	}
	found := false
	for _, r := range got.Reasons {
		if r == "Multiple penalty clauses identified" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing penalty reason in %v", got.Reasons)
	}
}

func TestRiskScorer_WithoutLimitationBonus(t *testing.T) {
	s := NewRiskScorer()

	got := s.Assess("The obligations apply without limitation to all affiliates.")
	if got.RiskScore != 2 {
		t.Errorf("score = %d, want 2", got.RiskScore)
	}
	if got.Reasons[0] != "Broad liability clause without limitations" {
		t.Errorf("reason = %q", got.Reasons[0])
	}
	if got.DetailedAnalysis[0].Context != "Broad liability exposure identified" {
		t.Errorf("context = %q", got.DetailedAnalysis[0].Context)
	}
}
