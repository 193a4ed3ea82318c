package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First sentence. Second! Third? ")
	want := []string{"First sentence", "Second", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %v, want %v", got, want)
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "short\n\nThis paragraph is comfortably longer than the minimum length filter.\n\nalso short"
	got := splitParagraphs(text, 50)
	if len(got) != 1 || !strings.HasPrefix(got[0], "This paragraph") {
		t.Errorf("splitParagraphs = %v", got)
	}
}

func TestContextAround(t *testing.T) {
	text := "Before text. The indemnify clause sits here. After text."

	got := contextAround(text, "indemnify", 10)
	if !strings.Contains(got, "indemnify") {
		t.Errorf("context %q does not contain the phrase", got)
	}

	// Absent phrase gets the canned sentence
	got = contextAround(text, "arbitration", 10)
	want := "The term 'arbitration' appears in the contract"
	if got != want {
		t.Errorf("absent phrase context = %q, want %q", got, want)
	}
}

func TestDedupeStrings_KeepsFirstSeenOrder(t *testing.T) {
	got := dedupeStrings([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupeStrings = %v, want %v", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("truncate unmodified = %q", got)
	}
}
