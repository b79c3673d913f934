package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock", Config{Provider: "mock"}, false},
		{"openai", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}}, false},
		{"openrouter", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"}}, false},
		{"anthropic", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant-test", Model: "claude-haiku"}}, false},
		{"gemini", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "AIza-test", Model: "gemini-flash"}}, false},
		{"missing key", Config{Provider: "openai"}, true},
		{"unknown", Config{Provider: "bard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), tt.cfg, nil, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p == nil {
				t.Fatal("expected non-nil provider")
			}
		})
	}
}

func TestWrap_ComposesPolicies(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Text: "Conceito -> Artigos -> Conclusão"},
	)
	cfg := Config{
		Retry:   RetryConfig{MaxAttempts: 2, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1},
		Breaker: BreakerConfig{Threshold: 3, Cooldown: time.Minute},
		Timeout: time.Second,
	}
	journal := &recordingJournal{}
	p := Wrap(mock, cfg, journal, zerolog.Nop())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Conceito -> Artigos -> Conclusão" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
	// Logging sits inside retry, so each attempt is journaled.
	if len(journal.events) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(journal.events))
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected ModelID to delegate, got %q", p.ModelID())
	}
}

func TestNewProvider_MockAnswersOffline(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	prose, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "Explique a posse."}}})
	if err != nil || prose.Text == "" {
		t.Fatalf("prose: %v %+v", err, prose)
	}

	quiz, err := p.Generate(context.Background(), Request{
		Messages:   []Message{{Role: RoleUser, Content: "Gere 2 questões DISCURSIVAS"}},
		JSONOutput: true,
	})
	if err != nil {
		t.Fatalf("structured: %v", err)
	}
	if !strings.HasPrefix(quiz.Text, "[") || !strings.Contains(quiz.Text, `"discursive"`) {
		t.Fatalf("unexpected structured reply %q", quiz.Text)
	}
}
