package quiz

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jusmind/jusmind/internal/generation"
	"github.com/jusmind/jusmind/internal/profile"
	"github.com/jusmind/jusmind/internal/question"
)

// Session is a single practice run over one topic. It is not safe for
// concurrent use: generator calls run outside the session and their results
// are applied with Deliver and DeliverDeepDive on the owning goroutine.
type Session struct {
	id         string
	topic      string
	contextTag string
	profile    profile.Profile
	stats      StatsSink

	phase Phase

	// seq identifies the newest item fetch; deliveries carrying an older
	// value are dropped.
	seq uint64

	items     []question.Question
	index     int
	score     int
	practiced int

	selected int
	draft    string
	outcome  Outcome

	deepDive deepDiveState
}

type deepDiveState struct {
	// requested is set once per question.
	requested bool

	// inFlight is true between RequestDeepDive and its delivery, even if
	// the cursor moved on meanwhile.
	inFlight bool

	index int
	text  string
}

// New creates a session in PhaseNew for topic and an optional exam context
// tag.
func New(topic, contextTag string, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		topic:      topic,
		contextTag: contextTag,
		profile:    profile.For(topic, contextTag),
		selected:   -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start moves a new session to PhaseLoading and returns the fetch to run.
// It returns false in every other phase, so repeated calls are no-ops.
func (s *Session) Start() (Fetch, bool) {
	if s.phase != PhaseNew {
		return Fetch{}, false
	}
	return s.beginFetch(), true
}

// Regenerate discards the current sequence and requests a new one. It is
// rejected while a fetch or a deep dive is outstanding.
func (s *Session) Regenerate() (Fetch, bool) {
	if s.phase == PhaseLoading || s.deepDive.inFlight {
		return Fetch{}, false
	}
	return s.beginFetch(), true
}

func (s *Session) beginFetch() Fetch {
	s.seq++
	s.phase = PhaseLoading
	s.items = nil
	s.index = 0
	s.score = 0
	s.practiced = 0
	s.resetCandidate()
	s.deepDive = deepDiveState{}

	return Fetch{
		Prompt: generation.QuizPrompt(s.topic, s.profile),
		Count:  s.profile.Count,
		seq:    s.seq,
	}
}

// Deliver applies the result of f. Stale or unexpected deliveries are
// ignored and reported as false. An empty sequence completes the session
// immediately.
func (s *Session) Deliver(f Fetch, items []question.Question) bool {
	if s.phase != PhaseLoading || f.seq != s.seq {
		return false
	}
	s.items = append([]question.Question(nil), items...)
	s.index = 0
	if len(s.items) == 0 {
		s.phase = PhaseCompleted
	} else {
		s.phase = PhasePresenting
	}
	return true
}

// Load runs Start, the blocking generator call and Deliver in sequence.
func (s *Session) Load(ctx context.Context, g Generator) bool {
	f, ok := s.Start()
	if !ok {
		return false
	}
	return s.Deliver(f, f.Run(ctx, g))
}

// Select sets the candidate option of the current objective item.
func (s *Session) Select(i int) error {
	q, err := s.presenting()
	if err != nil {
		return err
	}
	if !q.IsObjective() {
		return ErrKindMismatch
	}
	if i < 0 || i >= len(q.Choices()) {
		return ErrInvalidChoice
	}
	s.selected = i
	return nil
}

// SetDraft sets the candidate text of the current discursive item.
func (s *Session) SetDraft(text string) error {
	q, err := s.presenting()
	if err != nil {
		return err
	}
	if !q.IsDiscursive() {
		return ErrKindMismatch
	}
	s.draft = text
	return nil
}

// Submit grades the candidate answer and moves to PhaseAnswered. An
// objective answer is correct when it equals the item's correct index,
// which is 0 when the key is absent. A discursive answer counts as
// practiced.
func (s *Session) Submit() (Outcome, error) {
	q, err := s.presenting()
	if err != nil {
		return Outcome{}, err
	}

	var out Outcome
	switch {
	case q.IsObjective():
		if s.selected < 0 {
			return Outcome{}, ErrNoAnswer
		}
		idx, scoreable := q.CorrectIndex()
		out = Outcome{
			Correct:      s.selected == idx,
			Scoreable:    scoreable,
			Kind:         question.KindObjective,
			Selected:     s.selected,
			CorrectIndex: idx,
		}
		if out.Correct {
			s.score++
		}
	default:
		if strings.TrimSpace(s.draft) == "" {
			return Outcome{}, ErrNoAnswer
		}
		out = Outcome{Correct: true, Kind: question.KindDiscursive, Selected: -1}
		s.practiced++
	}

	s.outcome = out
	s.phase = PhaseAnswered
	if s.stats != nil {
		s.stats.Record(s.topic, out.Correct)
	}
	return out, nil
}

// Commentary returns the commentary of the answered item, or "" outside
// PhaseAnswered.
func (s *Session) Commentary() string {
	if s.phase != PhaseAnswered {
		return ""
	}
	return s.items[s.index].Commentary()
}

// RequestDeepDive returns the examiner-analysis request for the answered
// discursive item. It succeeds at most once per item and never while
// another call is outstanding.
func (s *Session) RequestDeepDive() (DeepDiveFetch, bool) {
	if s.phase != PhaseAnswered || s.deepDive.inFlight || s.deepDive.requested {
		return DeepDiveFetch{}, false
	}
	q := s.items[s.index]
	if !q.IsDiscursive() {
		return DeepDiveFetch{}, false
	}

	s.deepDive = deepDiveState{requested: true, inFlight: true, index: s.index}
	return DeepDiveFetch{
		Prompt: generation.DeepDivePrompt(q, s.draft),
		seq:    s.seq,
		index:  s.index,
	}, true
}

// DeliverDeepDive applies the result of f. It clears the outstanding call
// in any case and reports whether the text was kept for the current item.
func (s *Session) DeliverDeepDive(f DeepDiveFetch, text string) bool {
	if !s.deepDive.inFlight || f.seq != s.seq || f.index != s.deepDive.index {
		return false
	}
	s.deepDive.inFlight = false
	if f.index != s.index || s.phase != PhaseAnswered {
		return false
	}
	s.deepDive.text = text
	return true
}

// DeepDive returns the delivered analysis of the answered item.
func (s *Session) DeepDive() (string, bool) {
	if s.phase != PhaseAnswered || s.deepDive.inFlight || s.deepDive.index != s.index || s.deepDive.text == "" {
		return "", false
	}
	return s.deepDive.text, true
}

// DeepDivePending reports whether a deep-dive call is outstanding.
func (s *Session) DeepDivePending() bool {
	return s.deepDive.inFlight
}

// Advance moves past the answered item to the next one or to
// PhaseCompleted.
func (s *Session) Advance() bool {
	if s.phase != PhaseAnswered {
		return false
	}
	s.index++
	s.resetCandidate()
	if !s.deepDive.inFlight {
		s.deepDive = deepDiveState{}
	} else {
		s.deepDive.requested = false
	}
	if s.index >= len(s.items) {
		s.index = len(s.items)
		s.phase = PhaseCompleted
	} else {
		s.phase = PhasePresenting
	}
	return true
}

func (s *Session) presenting() (question.Question, error) {
	if s.phase != PhasePresenting {
		return question.Question{}, ErrNotPresenting
	}
	return s.items[s.index], nil
}

func (s *Session) resetCandidate() {
	s.selected = -1
	s.draft = ""
	s.outcome = Outcome{}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Topic returns the session topic.
func (s *Session) Topic() string { return s.topic }

// ContextTag returns the exam context tag, possibly empty.
func (s *Session) ContextTag() string { return s.contextTag }

// Profile returns the generation profile derived at creation.
func (s *Session) Profile() profile.Profile { return s.profile }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the item under the cursor while presenting or answered.
func (s *Session) Current() (question.Question, bool) {
	if s.phase != PhasePresenting && s.phase != PhaseAnswered {
		return question.Question{}, false
	}
	return s.items[s.index], true
}

// Index returns the zero-based cursor.
func (s *Session) Index() int { return s.index }

// Selected returns the candidate option, or -1.
func (s *Session) Selected() int { return s.selected }

// Draft returns the candidate discursive text.
func (s *Session) Draft() string { return s.draft }

// LastOutcome returns the outcome of the answered item.
func (s *Session) LastOutcome() (Outcome, bool) {
	return s.outcome, s.phase == PhaseAnswered
}

// Score returns the number of correct objective answers.
func (s *Session) Score() int { return s.score }

// Practiced returns the number of submitted discursive answers.
func (s *Session) Practiced() int { return s.practiced }

// Total returns the length of the fetched sequence.
func (s *Session) Total() int { return len(s.items) }

// Objective reports whether the session asks for objective items, in which
// case the final score is meaningful.
func (s *Session) Objective() bool {
	return s.profile.Modality == profile.Objective
}
