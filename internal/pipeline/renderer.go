package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"legalease/internal/model"
)

// Renderer writes analysis results to files and the terminal
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full analysis result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	b.WriteString("# Contract Analysis Report\n\n")

	ds := result.DetailedSummary
	b.WriteString("## Executive Summary\n\n")
	b.WriteString(ds.ExecutiveSummary + "\n\n")

	b.WriteString("## Key Points\n\n")
	for _, p := range ds.KeyPoints {
		b.WriteString("- " + p + "\n")
	}
	b.WriteString("\n")

	risk := result.RiskAssessment
	fmt.Fprintf(&b, "## Risk Assessment\n\n**Level:** %s (score %d)\n\n", risk.RiskLevel, risk.RiskScore)
	for _, reason := range risk.Reasons {
		b.WriteString("- " + reason + "\n")
	}
	b.WriteString("\n")
	if len(risk.DetailedAnalysis) > 0 {
		b.WriteString("| Factor | Impact |\n|---|---|\n")
		for _, f := range risk.DetailedAnalysis {
			fmt.Fprintf(&b, "| %s | %s |\n", f.Factor, f.Impact)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Financial Terms\n\n")
	writeList(&b, "Amounts", ds.FinancialTerms.Amounts)
	writeList(&b, "Payment schedule", ds.FinancialTerms.PaymentSchedule)
	writeList(&b, "Penalties", ds.FinancialTerms.Penalties)
	writeList(&b, "Interest rates", ds.FinancialTerms.InterestRates)
	writeList(&b, "Payment methods", ds.FinancialTerms.PaymentMethods)
	b.WriteString("\n")

	if len(ds.Timeline) > 0 {
		b.WriteString("## Timeline\n\n| Date | Event |\n|---|---|\n")
		for _, ev := range ds.Timeline {
			fmt.Fprintf(&b, "| %s | %s |\n", ev.Date, ev.Event)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Obligations\n\n")
	writeList(&b, "Critical", result.Obligations.Critical)
	writeList(&b, "Payment", result.Obligations.Payment)
	writeList(&b, "Performance", result.Obligations.Performance)
	b.WriteString("\n")

	b.WriteString("## Sections\n\n")
	for _, st := range model.SectionOrder {
		sentences := result.Sections[st]
		if len(sentences) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", sectionTitle(st))
		for _, s := range sentences {
			b.WriteString("- " + s + "\n")
		}
		b.WriteString("\n")
	}

	if len(result.KeyTerms) > 0 {
		b.WriteString("## Key Terms\n\n")
		for _, t := range result.KeyTerms {
			fmt.Fprintf(&b, "- **%s**: %s\n", t.Term, t.Definition)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n*Generated by legalease. Rule-based analysis, not legal advice.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a compact overview to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	if result.ProcessingStatus != model.StatusSuccess {
		fmt.Printf("Analysis failed: %s\n", result.Error)
		return
	}

	ds := result.DetailedSummary
	fmt.Printf("\nContract type: %s\n", ds.ContractType)
	fmt.Printf("Main subject:  %s\n", ds.MainSubject)
	fmt.Printf("Risk level:    %s (score %d)\n", result.RiskAssessment.RiskLevel, result.RiskAssessment.RiskScore)
	fmt.Printf("Obligations:   %d total, %d critical\n", len(result.Obligations.All), len(result.Obligations.Critical))
	fmt.Printf("Key terms:     %d\n", len(result.KeyTerms))
	fmt.Printf("\n%s\n", ds.ExecutiveSummary)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:** %s\n\n", label, strings.Join(items, "; "))
}

// sectionTitle turns a snake_case section key into a display title
func sectionTitle(st model.SectionType) string {
	words := strings.Split(string(st), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
