package generation

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[{"type":"objective"}]`, `[{"type":"objective"}]`},
		{"json fence", "```json\n[1]\n```", "[1]"},
		{"upper-case fence", "```JSON\n[1]\n```", "[1]"},
		{"plain fence", "```\n[1]\n```", "[1]"},
		{"commentary", "Aqui está:\n[1, 2]\nBons estudos!", "[1, 2]"},
		{"nested brackets", `x [[1],[2]] y`, `[[1],[2]]`},
		{"no brackets", "  sem conteúdo  ", "sem conteúdo"},
		{"reversed brackets", "] e [", "] e ["},
		{"fence rebuilt by removal", "``" + "```json" + "`[1]", "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Aqui está:\n```json\n[{\"type\":\"objective\",\"text\":\"X\"}]\n```",
		"``` ```json ``` [ ] ```",
		"````json`[`]```",
		"",
		"]]][[[",
	}
	r := rand.New(rand.NewPCG(1, 2))
	alphabet := []string{"`", "``", "```", "json", "[", "]", " ", "\n", "{", "}", "a", `"`}
	for range 500 {
		var b strings.Builder
		for range r.IntN(20) {
			b.WriteString(alphabet[r.IntN(len(alphabet))])
		}
		inputs = append(inputs, b.String())
	}

	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("Clean not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDecode_Scenario(t *testing.T) {
	text := "Aqui está:\n```json\n[{\"type\":\"objective\",\"text\":\"X\",\"options\":[\"A\",\"B\"],\"correctAnswerIndex\":1}]\n```"

	got, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Items))
	}
	q := got.Items[0]
	if !q.IsObjective() || q.Text != "X" || len(q.Options) != 2 {
		t.Fatalf("unexpected item: %+v", q)
	}
	if q.CorrectAnswerIndex == nil || *q.CorrectAnswerIndex != 1 {
		t.Fatalf("expected correctAnswerIndex 1, got %v", q.CorrectAnswerIndex)
	}
}

func TestDecode_IsIdempotentOverCleanedInput(t *testing.T) {
	text := "```json\n[{\"type\":\"discursive\",\"text\":\"Caso\",\"referenceAnswer\":\"R\"},{\"type\":\"objective\",\"text\":\"Q\"}]\n```"

	first, err := Decode(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := Decode(Clean(text))
	if err != nil {
		t.Fatalf("decode cleaned: %v", err)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		a, b := first.Items[i], second.Items[i]
		if a.Kind != b.Kind || a.Text != b.Text || a.ReferenceAnswer != b.ReferenceAnswer {
			t.Fatalf("item %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestDecode_QuarantinesUnknownTypes(t *testing.T) {
	text := `[
		{"type": "objective", "text": "ok"},
		{"type": "essay", "text": "unknown tag"},
		{"text": "missing tag"},
		"not an object",
		42,
		{"type": " Discursive ", "text": "tolerated casing"}
	]`

	got, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d: %+v", len(got.Items), got.Items)
	}
	if got.Quarantined != 4 {
		t.Fatalf("expected 4 quarantined, got %d", got.Quarantined)
	}
	if !got.Items[1].IsDiscursive() {
		t.Fatalf("expected second item discursive, got %q", got.Items[1].Kind)
	}
}

func TestDecode_PartialItemsPassThrough(t *testing.T) {
	got, err := Decode(`[{"type":"objective"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := got.Items[0]
	if len(q.Choices()) != 0 || q.Commentary() == "" {
		t.Fatalf("expected read-time fallbacks, got %+v", q)
	}
	if idx, scoreable := q.CorrectIndex(); idx != 0 || scoreable {
		t.Fatalf("CorrectIndex() = (%d, %v), want (0, false)", idx, scoreable)
	}
}

func TestDecode_Failures(t *testing.T) {
	for _, text := range []string{"", "desculpe, não consegui", "{\"type\":\"objective\"}", "[{broken", "[1,]"} {
		got, err := Decode(text)
		if err == nil {
			t.Errorf("Decode(%q): expected error", text)
		}
		if got.Items == nil || len(got.Items) != 0 {
			t.Errorf("Decode(%q): expected empty non-nil items, got %#v", text, got.Items)
		}
	}
}

func TestDecode_TotalOverGarbage(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	alphabet := []string{"[", "]", "{", "}", `"type"`, ":", `"objective"`, `"discursive"`, ",", "```json", "null", "1", `"x"`, " "}
	for range 1000 {
		var b strings.Builder
		for range r.IntN(30) {
			b.WriteString(alphabet[r.IntN(len(alphabet))])
		}
		got, _ := Decode(b.String())
		if got.Items == nil {
			t.Fatalf("Decode(%q) returned nil items", b.String())
		}
	}
}
