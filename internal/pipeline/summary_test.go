package pipeline

import (
	"reflect"
	"testing"

	"legalease/internal/model"
)

func TestComposeExecutiveSummary(t *testing.T) {
	sections := map[model.SectionType][]string{
		model.SectionPaymentTerms:       {"a paragraph"},
		model.SectionGeneralTerms:       {"another"},
		model.SectionTerminationClauses: {},
	}
	financial := model.FinancialTerms{Amounts: []string{"$1,000", "$2,000", "$3,000", "$4,000"}}
	risk := model.RiskAssessment{RiskLevel: model.RiskLow, Reasons: []string{"r1", "r2"}}
	timeline := []model.TimelineEvent{{Date: "January 1, 2025", Event: "Contract Start", Type: "milestone"}}

	got := composeExecutiveSummary("service agreement", "consulting services", sections, financial, risk, timeline)
	want := "This is a service agreement focusing on consulting services. " +
		"The contract involves financial obligations including $1,000, $2,000, $3,000. " +
		"Risk analysis indicates a LOW risk level with 2 identified risk factors. " +
		"The contract is structured into 2 main sections covering various legal and business aspects. " +
		"Important dates include 1 scheduled events or milestones."
	if got != want {
		t.Errorf("summary =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeExecutiveSummary_Minimal(t *testing.T) {
	got := composeExecutiveSummary("general agreement", "business relationship and obligations",
		map[model.SectionType][]string{}, model.FinancialTerms{},
		model.RiskAssessment{RiskLevel: model.RiskLow}, nil)

	want := "This is a general agreement focusing on business relationship and obligations. " +
		"Risk analysis indicates a LOW risk level with 0 identified risk factors."
	if got != want {
		t.Errorf("summary = %q", got)
	}
}

func TestComposeKeyPoints(t *testing.T) {
	risk := model.RiskAssessment{RiskLevel: model.RiskMedium}
	obligations := model.Obligations{All: []string{"a", "b", "c"}}
	financial := model.FinancialTerms{Amounts: []string{"$1"}}

	got := composeKeyPoints("lease agreement", "property rental", risk, obligations, financial)
	want := []string{
		"Contract type: lease agreement",
		"Main subject: property rental",
		"Risk level: MEDIUM",
		"Total obligations: 3",
		"Financial terms: 1 amounts identified",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key points = %v", got)
	}
}
