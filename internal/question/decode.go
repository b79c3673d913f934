package question

import (
	"encoding/json"
	"math"
	"strings"
)

// FromFields builds a Question from one decoded JSON object, tolerating
// missing or mistyped optional fields. Only the type tag is required: ok is
// false when it is not a known Kind. Fields of the other variant are
// dropped. The id is left empty for the caller to assign.
func FromFields(m map[string]any) (q Question, ok bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(stringField(m, "type"))))
	if !kind.Valid() {
		return Question{}, false
	}

	q = Question{
		Kind:        kind,
		Topic:       stringField(m, "topic"),
		Difficulty:  ParseDifficulty(stringField(m, "difficulty")),
		Text:        stringField(m, "text"),
		Explanation: stringField(m, "explanation"),
	}

	switch kind {
	case KindObjective:
		q.Options = stringsField(m, "options")
		q.CorrectAnswerIndex = intField(m, "correctAnswerIndex")
	case KindDiscursive:
		q.ReferenceAnswer = stringField(m, "referenceAnswer")
	}
	return q, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringsField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// intField accepts integral JSON numbers only.
func intField(m map[string]any, key string) *int {
	switch v := m[key].(type) {
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<31 {
			return IntPtr(int(v))
		}
	case json.Number:
		if i, err := v.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return IntPtr(int(i))
		}
	}
	return nil
}
