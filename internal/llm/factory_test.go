package llm

import (
	"strings"
	"testing"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil provider when disabled, got %T", p)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "carrier-pigeon"})
	if err == nil || !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("err = %v", err)
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Provider: "openai"})
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewProvider_CaseInsensitive(t *testing.T) {
	p, err := NewProvider(Config{Provider: "OpenAI", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("name = %q", p.Name())
	}
}

func TestNewProvider_RateLimited(t *testing.T) {
	p, err := NewProvider(Config{Provider: "openai", APIKey: "sk-test", RequestsPerSecond: 1, Burst: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RateLimitedProvider); !ok {
		t.Errorf("expected rate-limited wrapper, got %T", p)
	}
	if p.Name() != "openai" {
		t.Errorf("wrapped name = %q", p.Name())
	}
}
