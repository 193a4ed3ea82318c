package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocument_PlainText(t *testing.T) {
	path := writeTempFile(t, "contract.txt", "  The parties agree to the terms below.  ")

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if text != "The parties agree to the terms below." {
		t.Errorf("text = %q", text)
	}
}

func TestLoadDocument_HTML(t *testing.T) {
	html := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body><h1>Service Agreement</h1><p>The provider delivers weekly.</p>
<script>var tracked = true;</script></body></html>`
	path := writeTempFile(t, "contract.html", html)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if !strings.Contains(text, "Service Agreement") || !strings.Contains(text, "The provider delivers weekly.") {
		t.Errorf("text = %q", text)
	}
	if strings.Contains(text, "tracked") || strings.Contains(text, "color:red") || strings.Contains(text, "ignored") {
		t.Errorf("invisible content leaked: %q", text)
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := writeTempFile(t, "empty.txt", "   \n  ")
	if _, err := LoadDocument(empty); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestStripHTML_ParagraphBreaks(t *testing.T) {
	text, err := StripHTML("<p>first block</p><p>second block</p>")
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}
	if !strings.Contains(text, "\n\n") {
		t.Errorf("expected paragraph break between blocks, got %q", text)
	}
}
