package placeholder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jusmind/jusmind/internal/router"
)

func TestEnterPops(t *testing.T) {
	p := New("Tutor IA", NotConfigured)
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("enter should pop the screen")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	p := New("Tutor IA", NotConfigured)
	if _, cmd := p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unexpected command")
	}
}

func TestView(t *testing.T) {
	p := New("Aulas", NotConfigured)
	view := p.View(100, 30)
	for _, want := range []string{"Aulas", "GEMINI_API_KEY", "Voltar"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if p.Title() != "Aulas" {
		t.Errorf("unexpected title %q", p.Title())
	}
}
