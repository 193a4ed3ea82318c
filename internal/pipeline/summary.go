package pipeline

import (
	"fmt"
	"strings"

	"legalease/internal/model"
)

// composeExecutiveSummary builds the narrative summary from the already
// extracted components. Sentences are appended only when their component
// found something, so short contracts get a short summary.
func composeExecutiveSummary(
	contractType, mainSubject string,
	sections map[model.SectionType][]string,
	financial model.FinancialTerms,
	risk model.RiskAssessment,
	timeline []model.TimelineEvent,
) string {
	parts := []string{
		fmt.Sprintf("This is a %s focusing on %s.", contractType, mainSubject),
	}

	if len(financial.Amounts) > 0 {
		amounts := financial.Amounts
		if len(amounts) > 3 {
			amounts = amounts[:3]
		}
		parts = append(parts, fmt.Sprintf("The contract involves financial obligations including %s.",
			strings.Join(amounts, ", ")))
	}

	parts = append(parts, fmt.Sprintf("Risk analysis indicates a %s risk level with %d identified risk factors.",
		risk.RiskLevel, len(risk.Reasons)))

	sectionCount := 0
	for _, sentences := range sections {
		if len(sentences) > 0 {
			sectionCount++
		}
	}
	if sectionCount > 0 {
		parts = append(parts, fmt.Sprintf("The contract is structured into %d main sections covering various legal and business aspects.",
			sectionCount))
	}

	if len(timeline) > 0 {
		parts = append(parts, fmt.Sprintf("Important dates include %d scheduled events or milestones.",
			len(timeline)))
	}

	return strings.Join(parts, " ")
}

// composeKeyPoints builds the fixed five-point digest shown alongside the
// executive summary
func composeKeyPoints(
	contractType, mainSubject string,
	risk model.RiskAssessment,
	obligations model.Obligations,
	financial model.FinancialTerms,
) []string {
	return []string{
		fmt.Sprintf("Contract type: %s", contractType),
		fmt.Sprintf("Main subject: %s", mainSubject),
		fmt.Sprintf("Risk level: %s", risk.RiskLevel),
		fmt.Sprintf("Total obligations: %d", len(obligations.All)),
		fmt.Sprintf("Financial terms: %d amounts identified", len(financial.Amounts)),
	}
}
