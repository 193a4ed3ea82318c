package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// maxDocumentBytes rejects files larger than 10MB before reading them into
// memory
const maxDocumentBytes = 10 * 1024 * 1024

var blankLineRe = regexp.MustCompile(`\n{3,}`)

// LoadDocument reads a contract document from disk and returns its plain
// text. HTML files are stripped to visible text; everything else is treated
// as UTF-8 plain text.
func LoadDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > maxDocumentBytes {
		return "", fmt.Errorf("document too large: %d bytes (maximum %d)", info.Size(), maxDocumentBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = StripHTML(text)
		if err != nil {
			return "", fmt.Errorf("parse HTML: %w", err)
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from %s", path)
	}

	return text, nil
}

// StripHTML parses an HTML document and returns its visible text. Script
// and style contents are skipped; block elements become paragraph breaks so
// downstream paragraph splitting still works.
func StripHTML(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	collectVisibleText(doc, &buf)

	text := blankLineRe.ReplaceAllString(buf.String(), "\n\n")
	return strings.TrimSpace(text), nil
}

// blockElements get a paragraph break after their content
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "br": true, "blockquote": true,
}

func collectVisibleText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "head":
			return
		}
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			buf.WriteString(text)
			buf.WriteString(" ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectVisibleText(c, buf)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		buf.WriteString("\n\n")
	}
}
