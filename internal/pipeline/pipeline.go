package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"legalease/internal/cache"
	"legalease/internal/extract"
	"legalease/internal/llm"
	"legalease/internal/model"
	"legalease/internal/qa"
	"legalease/internal/score"
	"legalease/internal/simplify"
)

// Input guard errors. These are returned before any extraction runs.
var (
	ErrEmptyDocument    = errors.New("contract text cannot be empty")
	ErrDocumentTooShort = errors.New("contract text too short for meaningful analysis")
	ErrEmptyQuestion    = errors.New("question cannot be empty")
	ErrEmptyContext     = errors.New("contract context is required")
	ErrQuestionTooLong  = errors.New("question too long")
)

// Analyzer orchestrates the complete contract analysis: section
// classification, entity and financial extraction, risk scoring, plain
// language simplification, glossary matching, obligations, timeline, and
// the composed executive summary.
type Analyzer struct {
	sections    *extract.SectionClassifier
	entities    *extract.EntityExtractor
	financial   *extract.FinancialTermExtractor
	timeline    *extract.TimelineExtractor
	risk        *score.RiskScorer
	simplifier  *simplify.Simplifier
	glossary    *extract.TermGlossary
	obligations *extract.ObligationExtractor
	classifier  *extract.ContractTypeClassifier
	qaEngine    *qa.Engine
	resultCache cache.Cache // nil when caching is disabled
	cacheTTL    time.Duration
	config      *model.Config
}

// NewAnalyzer creates an analyzer with the given configuration. An LLM
// provider is created only when one is configured; initialization failures
// degrade to keyword-only QA with a warning rather than failing hard.
func NewAnalyzer(cfg *model.Config) *Analyzer {
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Analyzer{
		sections:    extract.NewSectionClassifier(),
		entities:    extract.NewEntityExtractor(),
		financial:   extract.NewFinancialTermExtractor(),
		timeline:    extract.NewTimelineExtractor(),
		risk:        score.NewRiskScorer(),
		simplifier:  simplify.NewSimplifier(),
		glossary:    extract.NewTermGlossary(),
		obligations: extract.NewObligationExtractor(),
		classifier:  extract.NewContractTypeClassifier(),
		qaEngine:    qa.NewEngine(provider),
		resultCache: resultCache,
		cacheTTL:    cfg.Cache.TTL,
		config:      cfg,
	}
}

// Analyze runs the full analysis over the contract text. Guard violations
// return an error; any internal failure is converted into a failed result
// so callers always get a structured response for valid input.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}
	if len(text) < a.config.Analysis.MinTextChars {
		return nil, ErrDocumentTooShort
	}

	if a.resultCache != nil {
		key := cache.Key(text)
		if data, found := a.resultCache.Get(key); found {
			var cached model.AnalysisResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt entry, drop it and reanalyze
			a.resultCache.Delete(key)
		}
	}

	result := a.analyze(text)

	if a.resultCache != nil && result.ProcessingStatus == model.StatusSuccess {
		if data, err := json.Marshal(result); err == nil {
			a.resultCache.Set(cache.Key(text), data, a.cacheTTL)
		}
	}

	return result, nil
}

// analyze performs the extraction sequence. A panic in any extractor is
// converted into a failed result rather than crashing the caller.
func (a *Analyzer) analyze(text string) (result *model.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.FailedResult(fmt.Sprintf("Contract processing failed: %v", r))
		}
	}()

	sections := a.sections.Classify(text)
	entities := a.entities.Extract(text)
	financial := a.financial.Extract(text)
	timeline := a.timeline.Extract(text)
	risk := a.risk.Assess(text)
	simplified := a.simplifier.Simplify(text)
	keyTerms := a.glossary.Extract(text)
	obligations := a.obligations.Extract(text)

	contractType := a.classifier.Classify(text)
	mainSubject := a.classifier.MainSubject(text, contractType)

	summary := composeExecutiveSummary(contractType, mainSubject, sections, financial, risk, timeline)
	keyPoints := composeKeyPoints(contractType, mainSubject, risk, obligations, financial)

	return &model.AnalysisResult{
		ProcessingStatus: model.StatusSuccess,
		DetailedSummary: model.DetailedSummary{
			ExecutiveSummary: summary,
			KeyPoints:        keyPoints,
			FinancialTerms:   financial,
			Timeline:         timeline,
			ContractType:     contractType,
			MainSubject:      mainSubject,
		},
		KeyTerms:       keyTerms,
		Obligations:    obligations,
		RiskAssessment: risk,
		Sections:       sections,
		Entities:       entities,
		SimplifiedText: simplified,
	}
}

// Ask answers a free-form question against the contract text, using the
// LLM when configured and falling back to keyword matching otherwise
func (a *Analyzer) Ask(ctx context.Context, question, contractText string) (*model.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	if strings.TrimSpace(contractText) == "" {
		return nil, ErrEmptyContext
	}
	if len(question) > a.config.Analysis.MaxQuestionChars {
		return nil, fmt.Errorf("%w: maximum %d characters", ErrQuestionTooLong, a.config.Analysis.MaxQuestionChars)
	}

	return a.qaEngine.Answer(ctx, question, contractText), nil
}

// HasLLM reports whether an LLM backend was successfully configured
func (a *Analyzer) HasLLM() bool {
	return a.qaEngine.HasLLM()
}
