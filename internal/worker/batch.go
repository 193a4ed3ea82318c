package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"legalease/internal/model"
	"legalease/internal/pipeline"
)

// DocumentAnalyzer analyzes one contract text
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*model.AnalysisResult, error)
}

// AnalyzeJob loads one document from disk and analyzes it
type AnalyzeJob struct {
	Path     string
	Analyzer DocumentAnalyzer
}

// Execute loads and analyzes the document
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	text, err := pipeline.LoadDocument(j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}

	result, err := j.Analyzer.Analyze(ctx, text)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}

	return &AnalyzeResult{Path: j.Path, Result: result}
}

// AnalyzeResult is the outcome of one batch document
type AnalyzeResult struct {
	Path   string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the error from the analysis, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    DocumentAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer DocumentAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given document paths concurrently. Results
// arrive in completion order, not submission order.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessManifest reads document paths from a manifest file and analyzes
// them concurrently
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file, one per line.
// Empty lines and #-comments are skipped; duplicates are dropped.
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
