package exams

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jusmind/jusmind/internal/catalog"
	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
)

type started struct {
	topic, tag string
}

func (s *started) Init() tea.Cmd                          { return nil }
func (s *started) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *started) View(int, int) string                   { return "" }
func (s *started) Title() string                          { return s.topic }

func starter(topic, tag string) screen.Screen { return &started{topic, tag} }

var down = tea.KeyPressMsg{Code: tea.KeyDown}

func TestExamsScreen_Sections(t *testing.T) {
	e := New("Direito Civil", starter)

	var labels []string
	for _, it := range e.menu.Items {
		labels = append(labels, it.Label)
	}
	got := strings.Join(labels, "|")
	want := "Simulado com IA|── Exame de Ordem (OAB)|OAB|── Concursos Públicos|TJRJ|── Universidades Públicas|UFF"
	if got != want {
		t.Errorf("items = %s\nwant    %s", got, want)
	}
}

func TestExamsScreen_StartsSelectedExam(t *testing.T) {
	e := New("Direito Civil", starter)

	// The cursor skips the section header.
	e.Update(down)
	if e.menu.Items[e.menu.Selected].Label != "OAB" {
		t.Fatalf("selected %q", e.menu.Items[e.menu.Selected].Label)
	}

	_, cmd := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push := cmd().(router.PushScreenMsg)
	s := push.Screen.(*started)
	if s.topic != "Direito Civil" || s.tag != "OAB" {
		t.Errorf("started %+v", s)
	}
}

func TestExamsScreen_MockExam(t *testing.T) {
	e := New("Direito Penal", starter)
	_, cmd := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s := cmd().(router.PushScreenMsg).Screen.(*started)
	if s.tag != catalog.SimulatedExamTag {
		t.Errorf("tag = %q", s.tag)
	}
}
