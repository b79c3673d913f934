// Package question defines the generated practice item: a tagged union of
// objective (multiple choice) and discursive (open-ended) questions.
package question

import "github.com/jusmind/jusmind/internal/fold"

// Kind discriminates the two question variants.
type Kind string

const (
	KindObjective  Kind = "objective"
	KindDiscursive Kind = "discursive"
)

// Valid reports whether k is a known variant tag.
func (k Kind) Valid() bool {
	return k == KindObjective || k == KindDiscursive
}

// Difficulty is the three-level difficulty scale.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts English and Portuguese labels, ignoring case and
// accents. Anything unrecognized is Medium.
func ParseDifficulty(s string) Difficulty {
	switch fold.String(s) {
	case "easy", "facil":
		return Easy
	case "hard", "dificil":
		return Hard
	default:
		return Medium
	}
}

// Label returns the Portuguese display label.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Fácil"
	case Hard:
		return "Difícil"
	default:
		return "Médio"
	}
}

// NoCommentary is shown when an item carries neither explanation nor rubric.
const NoCommentary = "Sem comentário disponível."

// Question is one generated practice item. Exactly one variant's fields
// are populated, selected by Kind.
type Question struct {
	ID          string
	Kind        Kind
	Topic       string
	Difficulty  Difficulty
	Text        string
	Explanation string

	// Objective only.
	Options            []string
	CorrectAnswerIndex *int

	// Discursive only.
	ReferenceAnswer string
}

// IsObjective reports whether q is a multiple-choice item.
func (q Question) IsObjective() bool { return q.Kind == KindObjective }

// IsDiscursive reports whether q is an open-ended item.
func (q Question) IsDiscursive() bool { return q.Kind == KindDiscursive }

// Choices returns the options of an objective item. Discursive items and
// objective items without options yield an empty slice.
func (q Question) Choices() []string {
	if q.Kind != KindObjective || q.Options == nil {
		return []string{}
	}
	return q.Options
}

// CorrectIndex returns the index an answer is graded against. A missing
// index grades against 0; scoreable is false in that case and whenever the
// index falls outside the options.
func (q Question) CorrectIndex() (idx int, scoreable bool) {
	if q.Kind != KindObjective || q.CorrectAnswerIndex == nil {
		return 0, false
	}
	idx = *q.CorrectAnswerIndex
	return idx, idx >= 0 && idx < len(q.Options)
}

// Rubric returns the reference answer of a discursive item.
func (q Question) Rubric() string {
	if q.Kind != KindDiscursive {
		return ""
	}
	return q.ReferenceAnswer
}

// Commentary is the text revealed after answering: the explanation for
// objective items; the rubric, then the explanation, for discursive ones.
func (q Question) Commentary() string {
	if q.Kind == KindDiscursive && q.ReferenceAnswer != "" {
		return q.ReferenceAnswer
	}
	if q.Explanation != "" {
		return q.Explanation
	}
	return NoCommentary
}

// IntPtr is a convenience for building objective items.
func IntPtr(i int) *int { return &i }
