// Package quiz implements the practice-question session: one topic, one
// fetched sequence of items, answered in order.
package quiz

import (
	"context"
	"errors"

	"github.com/jusmind/jusmind/internal/question"
)

var (
	// ErrNoAnswer is returned by Submit when no candidate answer is set.
	ErrNoAnswer = errors.New("quiz: no answer given")

	// ErrNotPresenting is returned when an answer operation arrives while
	// no question is awaiting an answer.
	ErrNotPresenting = errors.New("quiz: no question awaiting an answer")

	// ErrKindMismatch is returned when the answer shape does not match the
	// current question (Select on a discursive item, SetDraft on an
	// objective one).
	ErrKindMismatch = errors.New("quiz: answer does not match question kind")

	// ErrInvalidChoice is returned by Select for an index outside the
	// current item's options.
	ErrInvalidChoice = errors.New("quiz: choice out of range")
)

// Generator produces practice items and prose. generation.Client satisfies
// it.
type Generator interface {
	Structured(ctx context.Context, prompt string, count int) []question.Question
	Prose(ctx context.Context, prompt string) string
}

// StatsSink receives one notification per submitted answer.
type StatsSink interface {
	Record(topic string, correct bool)
}

// Phase is the current phase of a Session.
type Phase int

const (
	PhaseNew        Phase = iota // Created, nothing requested yet
	PhaseLoading                 // Waiting for the item sequence
	PhasePresenting              // Current item awaits an answer
	PhaseAnswered                // Current item answered, commentary available
	PhaseCompleted               // Cursor passed the last item
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseAnswered:
		return "answered"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Fetch is the token for one item-sequence request. A Fetch returned by an
// earlier Start or Regenerate is stale once a newer one exists.
type Fetch struct {
	Prompt string
	Count  int

	seq uint64
}

// Run performs the blocking generator call for f.
func (f Fetch) Run(ctx context.Context, g Generator) []question.Question {
	return g.Structured(ctx, f.Prompt, f.Count)
}

// DeepDiveFetch is the token for one deep-dive request.
type DeepDiveFetch struct {
	Prompt string

	seq   uint64
	index int
}

// Run performs the blocking generator call for f.
func (f DeepDiveFetch) Run(ctx context.Context, g Generator) string {
	return g.Prose(ctx, f.Prompt)
}

// Outcome describes a submitted answer.
type Outcome struct {
	// Correct is the grading result. Discursive answers are always
	// reported correct (practiced).
	Correct bool

	// Scoreable is false when the item carried no usable answer key; the
	// grade then compares against option 0.
	Scoreable bool

	// Kind is the kind of the answered item.
	Kind question.Kind

	// Selected is the chosen option for objective items.
	Selected int

	// CorrectIndex is the option graded as correct for objective items.
	CorrectIndex int
}

// Option configures a Session.
type Option func(*Session)

// WithStats sets the sink notified on every submitted answer.
func WithStats(sink StatsSink) Option {
	return func(s *Session) { s.stats = sink }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}
