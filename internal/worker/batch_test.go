package worker

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"legalease/internal/model"
)

// stubAnalyzer implements DocumentAnalyzer without running the pipeline
type stubAnalyzer struct{}

func (s *stubAnalyzer) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	return &model.AnalysisResult{
		ProcessingStatus: model.StatusSuccess,
		SimplifiedText:   text,
	}, nil
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	dir := t.TempDir()
	p1 := writeDoc(t, dir, "a.txt", "first contract body")
	p2 := writeDoc(t, dir, "b.txt", "second contract body")
	missing := filepath.Join(dir, "missing.txt")

	b := NewBatchProcessor(&stubAnalyzer{}, 2)
	results := b.ProcessPaths(context.Background(), []string{p1, p2, missing})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	byPath := map[string]*AnalyzeResult{}
	for _, r := range results {
		byPath[r.Path] = r
	}

	if r := byPath[p1]; r.Error != nil || r.Result.SimplifiedText != "first contract body" {
		t.Errorf("result for %s = %+v", p1, r)
	}
	if r := byPath[missing]; r.Error == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&stubAnalyzer{}, 2)
	results := b.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeDoc(t, dir, "manifest.txt", strings.Join([]string{
		"# comment line",
		"docs/a.txt",
		"",
		"docs/b.txt",
		"docs/a.txt", // duplicate
	}, "\n"))

	paths, err := ReadPathsFromFile(manifest)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}
	want := []string{"docs/a.txt", "docs/b.txt"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestProcessManifest(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "c.txt", "contract body text")
	manifest := writeDoc(t, dir, "manifest.txt", doc+"\n")

	b := NewBatchProcessor(&stubAnalyzer{}, 1)
	results, err := b.ProcessManifest(context.Background(), manifest)
	if err != nil {
		t.Fatalf("ProcessManifest: %v", err)
	}
	if len(results) != 1 || results[0].Error != nil {
		t.Fatalf("results = %+v", results)
	}
}
