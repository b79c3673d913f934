package llm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jusmind/jusmind/internal/store"
)

type recordingJournal struct {
	events []store.LLMRequestEventData
	err    error
}

func (j *recordingJournal) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	j.events = append(j.events, data)
	return j.err
}

func TestLogging_JournalsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "[]", Usage: Usage{InputTokens: 7, OutputTokens: 3}})
	journal := &recordingJournal{}
	p := WithLogging(mock, journal, zerolog.Nop())

	ctx := WithPurpose(context.Background(), "quiz")
	_, err := p.Generate(ctx, Request{
		System:     "persona",
		Messages:   []Message{{Role: RoleUser, Content: "Gere questões"}},
		JSONOutput: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(journal.events) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(journal.events))
	}
	e := journal.events[0]
	if e.Purpose != "quiz" || !e.Success || e.InputTokens != 7 || e.OutputTokens != 3 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.ResponseBody != "[]" {
		t.Fatalf("expected response body captured, got %q", e.ResponseBody)
	}
	for _, want := range []string{"[system]", "persona", "[user]", "Gere questões", "application/json"} {
		if !strings.Contains(e.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, e.RequestBody)
		}
	}
}

func TestLogging_FailureIsLoggedAndJournaled(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	journal := &recordingJournal{}
	var buf bytes.Buffer
	p := WithLogging(mock, journal, zerolog.New(&buf))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(journal.events) != 1 || journal.events[0].Success {
		t.Fatalf("expected one failed entry, got %+v", journal.events)
	}
	if !strings.Contains(buf.String(), "llm request failed") {
		t.Fatalf("expected warn log, got %q", buf.String())
	}
}

func TestLogging_JournalErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, &recordingJournal{err: errors.New("disk full")}, zerolog.Nop())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("journal failure must not surface: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestLogging_NilJournal(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, nil, zerolog.Nop())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
