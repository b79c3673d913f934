package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jusmind/jusmind/internal/question"
)

var (
	jsonFence  = regexp.MustCompile("(?i)```json\\s*")
	plainFence = regexp.MustCompile("```\\s*")
)

// Clean strips code fences and surrounding commentary from a structured
// response, keeping the span from the first '[' to the last ']'. It is
// idempotent: Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	for {
		next := plainFence.ReplaceAllString(jsonFence.ReplaceAllString(text, ""), "")
		if next == text {
			break
		}
		text = next
	}
	text = strings.TrimSpace(text)

	first := strings.Index(text, "[")
	last := strings.LastIndex(text, "]")
	if first != -1 && last > first {
		text = text[first : last+1]
	}
	return text
}

// Decoded is the outcome of decoding a structured response.
type Decoded struct {
	Items []question.Question

	// Quarantined counts array elements rejected by the item schema.
	Quarantined int
}

// Decode runs the repair pipeline over a raw structured response. It fails
// only when the cleaned payload is not a JSON array; individual elements
// with an unknown type tag are quarantined. Item ids are left empty.
func Decode(text string) (Decoded, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(Clean(text)), &elems); err != nil {
		return Decoded{Items: []question.Question{}}, fmt.Errorf("parse item array: %w", err)
	}

	out := Decoded{Items: make([]question.Question, 0, len(elems))}
	for _, raw := range elems {
		q, err := decodeItem(raw)
		if err != nil {
			out.Quarantined++
			continue
		}
		out.Items = append(out.Items, q)
	}
	return out, nil
}

func decodeItem(raw json.RawMessage) (question.Question, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return question.Question{}, fmt.Errorf("parse item: %w", err)
	}
	if err := validateItem(doc); err != nil {
		return question.Question{}, err
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return question.Question{}, fmt.Errorf("item is not an object")
	}
	q, ok := question.FromFields(fields)
	if !ok {
		return question.Question{}, fmt.Errorf("unknown item type %v", fields["type"])
	}
	return q, nil
}
