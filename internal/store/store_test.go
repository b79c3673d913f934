package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='llm_requests'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "llm_requests" {
		t.Errorf("table name = %q, want 'llm_requests'", name)
	}
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "chat", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event after reopen, got %d", len(events))
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dir, "jusmind", "jusmind.db")
	if p != want {
		t.Fatalf("path = %q, want %q", p, want)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	entries := []LLMRequestEventData{
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "quiz", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true, RequestBody: "[user]\nGere", ResponseBody: "[]"},
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 50, OutputTokens: 200, LatencyMs: 300, Success: true},
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "chat", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gpt-4o-mini", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 10, OutputTokens: 20, LatencyMs: 200, Success: true},
	}
	for _, e := range entries {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	t.Run("newest first with limit", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Purpose != "lesson" || events[1].ErrorMessage != "rate limited" {
			t.Fatalf("unexpected order: %+v", events)
		}
		if !events[0].Timestamp.Equal(base.Add(4 * time.Minute)) {
			t.Fatalf("timestamp = %v", events[0].Timestamp)
		}
	})

	t.Run("purpose filter", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "chat"})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 chat events, got %d", len(events))
		}
	})

	t.Run("time window", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{
			From: base.Add(2 * time.Minute),
			To:   base.Add(3 * time.Minute),
		})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events in window, got %d", len(events))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		e, err := repo.GetLLMEvent(ctx, 1)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if e == nil || e.Purpose != "quiz" || !e.Success || e.RequestBody != "[user]\nGere" || e.ResponseBody != "[]" {
			t.Fatalf("unexpected event: %+v", e)
		}

		missing, err := repo.GetLLMEvent(ctx, 99)
		if err != nil {
			t.Fatalf("get missing: %v", err)
		}
		if missing != nil {
			t.Fatalf("expected nil for unknown id, got %+v", missing)
		}
	})

	t.Run("usage by purpose", func(t *testing.T) {
		usage, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			t.Fatalf("usage: %v", err)
		}
		if len(usage) != 3 {
			t.Fatalf("expected 3 purposes, got %d", len(usage))
		}
		chat := usage[0]
		if chat.Purpose != "chat" || chat.Calls != 2 || chat.InputTokens != 50 || chat.OutputTokens != 200 || chat.AvgLatencyMs != 200 {
			t.Fatalf("unexpected chat usage: %+v", chat)
		}
	})

	t.Run("usage by model", func(t *testing.T) {
		usage, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			t.Fatalf("usage: %v", err)
		}
		if len(usage) != 2 {
			t.Fatalf("expected 2 models, got %d", len(usage))
		}
		if usage[0].Model != "gemini-2.5-flash" || usage[0].Calls != 3 || usage[0].InputTokens != 150 {
			t.Fatalf("unexpected model usage: %+v", usage[0])
		}
	})
}
