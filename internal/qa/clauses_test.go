package qa

import (
	"reflect"
	"strings"
	"testing"
)

func TestRelevantClauses(t *testing.T) {
	context := "The tenant pays rent of five hundred dollars monthly. " +
		"Snow removal is handled by the owner. " +
		"The tenant also pays utility charges monthly in arrears."

	clauses := relevantClauses(context, "does the tenant pays monthly")

	if len(clauses) != 2 {
		t.Fatalf("clauses = %v", clauses)
	}
	if !strings.Contains(clauses[0], "rent of five hundred dollars") {
		t.Errorf("first clause = %q", clauses[0])
	}
	if !strings.Contains(clauses[1], "utility charges") {
		t.Errorf("second clause = %q", clauses[1])
	}
}

func TestRelevantClauses_CapAndTruncate(t *testing.T) {
	long := "the tenant pays " + strings.Repeat("x", 300)
	var parts []string
	for i := 0; i < 8; i++ {
		parts = append(parts, long)
	}
	clauses := relevantClauses(strings.Join(parts, ". "), "what does the tenant pays")

	if len(clauses) != 5 {
		t.Fatalf("expected cap at 5, got %d", len(clauses))
	}
	for _, c := range clauses {
		if len(c) != 253 || !strings.HasSuffix(c, "...") {
			t.Errorf("expected 250-char truncation, got %d chars", len(c))
		}
	}
}

func TestRelevantClauses_EmptyNotNil(t *testing.T) {
	clauses := relevantClauses("Nothing matches here at all in this text.", "unrelated question words")
	if clauses == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(clauses) != 0 {
		t.Errorf("clauses = %v", clauses)
	}
}

func TestFollowUpQuestions_FiltersSimilar(t *testing.T) {
	got := followUpQuestions("What are the payment terms?")

	want := []string{
		"How can this contract be terminated?",
		"What happens if there's a breach of contract?",
		"Are there any liability limitations?",
		"How are disputes resolved?",
		"What intellectual property rights are involved?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("follow-ups = %v, want %v", got, want)
	}
}

func TestFollowUpQuestions_Cap(t *testing.T) {
	got := followUpQuestions("completely unrelated")
	if len(got) != 6 {
		t.Errorf("expected cap at 6, got %d", len(got))
	}
}
