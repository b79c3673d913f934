package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	mock := NewMockProvider(down(), down(), MockResponse{Text: "unreachable"})
	b := newBreaker(mock, BreakerConfig{Threshold: 2, Cooldown: time.Minute}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := b.Generate(context.Background(), Request{}); err == nil {
			t.Fatalf("call %d: expected provider error", i)
		}
	}
	if b.State() != "open" {
		t.Fatalf("expected open, got %s", b.State())
	}

	_, err := b.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("open circuit must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	mock := NewMockProvider(down(), MockResponse{Text: "ok"}, down())
	b := newBreaker(mock, BreakerConfig{Threshold: 2, Cooldown: time.Minute}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, _ = b.Generate(context.Background(), Request{})
	}
	if b.State() != "closed" {
		t.Fatalf("non-consecutive failures must not open the circuit, got %s", b.State())
	}
}

func TestBreaker_HalfOpenTrial(t *testing.T) {
	const cooldown = 50 * time.Millisecond

	tests := []struct {
		name  string
		trial MockResponse
		want  string
	}{
		{"trial succeeds", MockResponse{Text: "ok"}, "closed"},
		{"trial fails", down(), "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(down(), tt.trial)
			b := newBreaker(mock, BreakerConfig{Threshold: 1, Cooldown: cooldown}, zerolog.Nop())

			_, _ = b.Generate(context.Background(), Request{})
			if b.State() != "open" {
				t.Fatalf("expected open, got %s", b.State())
			}
			if _, err := b.Generate(context.Background(), Request{}); !errors.Is(err, ErrCircuitOpen) {
				t.Fatalf("expected ErrCircuitOpen during cooldown, got %v", err)
			}

			time.Sleep(2 * cooldown)
			if b.State() != "half-open" {
				t.Fatalf("expected half-open after cooldown, got %s", b.State())
			}
			_, _ = b.Generate(context.Background(), Request{})
			if b.State() != tt.want {
				t.Fatalf("expected %s after trial, got %s", tt.want, b.State())
			}
			if mock.CallCount() != 2 {
				t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
			}
		})
	}
}

func TestBreaker_CancellationIsNotAFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "unused"})
	b := newBreaker(mock, BreakerConfig{Threshold: 1, Cooldown: time.Minute}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if b.State() != "closed" {
		t.Fatalf("cancellation must not open the circuit, got %s", b.State())
	}
}

func TestWithCircuitBreaker_ZeroThresholdDisabled(t *testing.T) {
	mock := NewMockProvider()
	if p := WithCircuitBreaker(mock, BreakerConfig{}, zerolog.Nop()); p != Provider(mock) {
		t.Fatal("expected provider returned unchanged")
	}
}
