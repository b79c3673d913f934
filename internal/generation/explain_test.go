package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jusmind/jusmind/internal/llm"
	"github.com/jusmind/jusmind/internal/question"
)

func explainItem() question.Question {
	return question.Question{
		ID:                 "q1",
		Kind:               question.KindObjective,
		Text:               "Qual o prazo da apelação?",
		Options:            []string{"5 dias", "15 dias úteis"},
		CorrectAnswerIndex: question.IntPtr(1),
	}
}

func TestExplain(t *testing.T) {
	rec := &purposeRecorder{}
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Tese Jurídica: o prazo é de 15 dias úteis."})
	c := newTestClient(rec.wrap(mock))

	got := c.Explain(context.Background(), explainItem())
	if !strings.HasPrefix(got, "Tese Jurídica") {
		t.Fatalf("unexpected explanation: %q", got)
	}
	if len(rec.purposes) != 1 || rec.purposes[0] != PurposeExplain {
		t.Errorf("purposes = %v, want [%s]", rec.purposes, PurposeExplain)
	}
	if !strings.Contains(mock.LastCall().Messages[0].Content, "Gabarito: 15 dias úteis") {
		t.Errorf("prompt does not carry the answer key: %q", mock.LastCall().Messages[0].Content)
	}
}

func TestExplain_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want string
	}{
		{"transport error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}, ExplainFailure},
		{"blank text", llm.MockResponse{Text: "   "}, NoExplanation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(llm.NewMockProvider(tt.resp))
			if got := c.Explain(context.Background(), explainItem()); got != tt.want {
				t.Errorf("Explain = %q, want %q", got, tt.want)
			}
		})
	}
}
