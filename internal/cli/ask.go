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
	askTimeout  time.Duration
	llmProvider string
	llmModel    string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <file> <question>",
	Short: "Ask a question about a contract",
	Long: `Ask answers a free-form question against a contract document.

With an LLM configured (--llm), the answer comes from the model with the
contract as context. Without one, or when the LLM call fails, a keyword
matcher answers from the contract text directly. Either way the response
includes relevant clauses and follow-up suggestions.

Example:
  legalease ask contract.txt "What are the payment terms?"
  legalease ask contract.txt "How can this be terminated?" --llm openai`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().DurationVar(&askTimeout, "timeout", 1*time.Minute, "overall timeout")

	// LLM flags
	askCmd.Flags().StringVar(&llmProvider, "llm", "", "LLM provider (openai, anthropic, ollama); empty = keyword fallback only")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	path, question := args[0], args[1]
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if llmProvider != "" {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	text, err := pipeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	analyzer := pipeline.NewAnalyzer(cfg)

	if verbose {
		if analyzer.HasLLM() {
			fmt.Fprintf(os.Stderr, "Answering with %s\n\n", cfg.LLM.Provider)
		} else {
			fmt.Fprintf(os.Stderr, "Answering with keyword matching\n\n")
		}
	}

	answer, err := analyzer.Ask(ctx, question, text)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(answer.Answer)

	if len(answer.RelevantClauses) > 0 {
		fmt.Println("\nRelevant clauses:")
		for _, clause := range answer.RelevantClauses {
			fmt.Printf("  - %s\n", clause)
		}
	}

	if len(answer.FollowUpSuggestions) > 0 {
		fmt.Println("\nYou could also ask:")
		for _, q := range answer.FollowUpSuggestions {
			fmt.Printf("  - %s\n", q)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "\nConfidence: %.1f\n", answer.Confidence)
	}

	return nil
}

// configureLLM fills in the LLM section of the config from flags and
// environment variables
func configureLLM(cfg *model.Config, provider, modelName string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = modelName

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}
