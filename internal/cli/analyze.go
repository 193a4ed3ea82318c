package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"legalease/internal/model"
	"legalease/internal/pipeline"
)

var (
	outJSON  string
	outMD    string
	timeout  time.Duration
	noCache  bool
	noFooter bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a contract document and generate a structured report",
	Long: `Analyze runs the full rule-based pipeline over one contract:
- Section classification and key entity extraction
- Financial terms, obligations, and timeline
- Weighted keyword risk scoring
- Plain-language simplification and glossary matching
- Contract type detection and executive summary

Plain text and HTML documents are supported.

Example:
  legalease analyze contract.txt
  legalease analyze contract.html --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	text, err := pipeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	analyzer := pipeline.NewAnalyzer(cfg)
	result, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	if result.ProcessingStatus != model.StatusSuccess {
		return fmt.Errorf("analyze failed: %s", result.Error)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified %d sections\n", len(result.Sections))
		fmt.Fprintf(os.Stderr, "✓ Found %d key terms\n", len(result.KeyTerms))
		fmt.Fprintf(os.Stderr, "✓ Risk level: %s (score %d)\n", result.RiskAssessment.RiskLevel, result.RiskAssessment.RiskScore)
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)

	return nil
}
