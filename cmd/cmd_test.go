package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/llm"
	"github.com/jusmind/jusmind/internal/question"
	"github.com/jusmind/jusmind/internal/quiz"
)

type fakeGenerator struct {
	items   []question.Question
	prose   string
	replies []string
}

func (f *fakeGenerator) Structured(context.Context, string, int) []question.Question {
	return f.items
}

func (f *fakeGenerator) Prose(context.Context, string) string { return f.prose }

func (f *fakeGenerator) Converse(context.Context, []llm.Message, string) string {
	if len(f.replies) == 0 {
		return ""
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r
}

func run(t *testing.T, input string, fn func(in *lineReader) error) string {
	t.Helper()
	var out bytes.Buffer
	if err := fn(newLineReader(strings.NewReader(input), &out)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want int
	}{
		{"a", 4, 0},
		{"C", 4, 2},
		{"d", 4, 3},
		{"e", 4, -1},
		{"1", 4, -1},
		{"ab", 4, -1},
		{"", 4, -1},
	}
	for _, tt := range tests {
		if got := optionIndex(tt.in, tt.n); got != tt.want {
			t.Errorf("optionIndex(%q, %d) = %d, want %d", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPlayQuiz_Objective(t *testing.T) {
	gen := &fakeGenerator{items: []question.Question{
		{Kind: question.KindObjective, Text: "Prazo da contestação?", Options: []string{"5 dias", "15 dias úteis"}, CorrectAnswerIndex: question.IntPtr(1), Explanation: "Art. 335 do CPC."},
		{Kind: question.KindObjective, Text: "Capital do Brasil?", Options: []string{"Brasília", "Rio"}, CorrectAnswerIndex: question.IntPtr(0)},
	}}
	s := quiz.New("Processo Civil", "OAB")

	out := run(t, "x\nb\na\n", func(in *lineReader) error {
		return playQuiz(context.Background(), s, gen, in)
	})

	if !strings.Contains(out, "Escolha uma letra entre A e B.") {
		t.Errorf("expected invalid-letter notice, got:\n%s", out)
	}
	if !strings.Contains(out, "Art. 335 do CPC.") {
		t.Errorf("expected commentary, got:\n%s", out)
	}
	if !strings.Contains(out, "Acertos: 2 de 2") {
		t.Errorf("expected final score, got:\n%s", out)
	}
	if s.Phase() != quiz.PhaseCompleted {
		t.Errorf("expected completed session, got %v", s.Phase())
	}
}

func TestPlayQuiz_MissingKeyWarns(t *testing.T) {
	gen := &fakeGenerator{items: []question.Question{
		{Kind: question.KindObjective, Text: "Sem gabarito", Options: []string{"A", "B"}},
	}}
	out := run(t, "a\n", func(in *lineReader) error {
		return playQuiz(context.Background(), quiz.New("Direito Civil", ""), gen, in)
	})
	if !strings.Contains(out, "Gabarito ausente") {
		t.Errorf("expected missing-key warning, got:\n%s", out)
	}
}

func TestPlayQuiz_Discursive(t *testing.T) {
	gen := &fakeGenerator{
		items: []question.Question{
			{Kind: question.KindDiscursive, Text: "Redija a peça cabível.", ReferenceAnswer: "Apelação."},
		},
		prose: "Faltou citar o art. 1.009 do CPC.",
	}
	s := quiz.New("Processo Civil", "OAB 2ª fase - Peça")

	out := run(t, "Cabe apelação.\n.\ns\n", func(in *lineReader) error {
		return playQuiz(context.Background(), s, gen, in)
	})

	for _, want := range []string{"Resposta registrada", "Apelação.", "art. 1.009", "Questões praticadas: 1 de 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPlayQuiz_Empty(t *testing.T) {
	out := run(t, "", func(in *lineReader) error {
		return playQuiz(context.Background(), quiz.New("Direito Penal", ""), &fakeGenerator{}, in)
	})
	if !strings.Contains(out, "Não foi possível gerar questões agora.") {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}

func TestPlayQuiz_EndOfInputStops(t *testing.T) {
	gen := &fakeGenerator{items: []question.Question{
		{Kind: question.KindObjective, Text: "Q", Options: []string{"A", "B"}, CorrectAnswerIndex: question.IntPtr(0)},
	}}
	s := quiz.New("Direito Penal", "")
	run(t, "", func(in *lineReader) error {
		return playQuiz(context.Background(), s, gen, in)
	})
	if s.Phase() != quiz.PhasePresenting {
		t.Errorf("expected session left presenting, got %v", s.Phase())
	}
}

func TestConverse(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"Usucapião é aquisição pela posse.", "E o que é posse?"}}
	conv := chat.New()

	out := run(t, "O que é usucapião?\n/modo\nE agora?\n/nova\n/sair\n", func(in *lineReader) error {
		return converse(context.Background(), conv, gen, in)
	})

	for _, want := range []string{
		chat.Greeting,
		"jusmind: Usucapião é aquisição pela posse.",
		"Modo: " + chat.ModeSocratic.Label(),
		"jusmind: E o que é posse?",
		chat.ResetGreeting,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if conv.Mode() != chat.ModeResolver {
		t.Error("reset should return to resolver mode")
	}
}
