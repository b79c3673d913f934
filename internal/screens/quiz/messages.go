package quiz

import (
	"github.com/jusmind/jusmind/internal/question"
	qz "github.com/jusmind/jusmind/internal/quiz"
)

// itemsReadyMsg carries the result of a question-set fetch.
type itemsReadyMsg struct {
	SessionID string
	Fetch     qz.Fetch
	Items     []question.Question
}

// deepDiveReadyMsg carries the examiner analysis of a discursive answer.
type deepDiveReadyMsg struct {
	SessionID string
	Fetch     qz.DeepDiveFetch
	Text      string
}
