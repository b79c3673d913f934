package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jusmind/jusmind/internal/ui/theme"
)

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestMenuSkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "── Seção", Disabled: true},
		{Label: "OAB", Action: func() tea.Cmd { fired = "OAB"; return nil }},
		{Label: "── Outra", Disabled: true},
		{Label: "TJRJ", Action: func() tea.Cmd { fired = "TJRJ"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(keyDown)
	if m.Selected != 3 {
		t.Fatalf("down should skip the header, got %d", m.Selected)
	}
	m, _ = m.Update(keyDown)
	if m.Selected != 3 {
		t.Fatalf("down at the end should stay, got %d", m.Selected)
	}
	m, _ = m.Update(keyUp)
	m, _ = m.Update(keyUp)
	if m.Selected != 1 {
		t.Fatalf("up should stop at the first enabled item, got %d", m.Selected)
	}

	m.Update(keyEnter)
	if fired != "OAB" {
		t.Errorf("enter fired %q, want OAB", fired)
	}
}

func TestMenuViewWindowScrolls(t *testing.T) {
	var items []MenuItem
	for _, l := range []string{"um", "dois", "tres", "quatro", "cinco"} {
		items = append(items, MenuItem{Label: l})
	}
	m := NewMenu(items)
	for i := 0; i < 4; i++ {
		m, _ = m.Update(keyDown)
	}

	view := m.ViewWindow(2)
	if !strings.Contains(view, "cinco") || !strings.Contains(view, "quatro") {
		t.Errorf("window should show the last two items, got %q", view)
	}
	if strings.Contains(view, "um") {
		t.Errorf("window should have scrolled past the first item, got %q", view)
	}
	if m.ViewWindow(0) != "" {
		t.Error("zero rows should render nothing")
	}
}

func TestMultiChoice(t *testing.T) {
	m := NewMultiChoice([]string{"5 dias", "15 dias", "30 dias"}, 40)
	if m.HasSelection() {
		t.Fatal("a new selector starts with nothing selected")
	}
	if strings.Contains(m.View(), "▸") {
		t.Error("no cursor before the first move")
	}
	if down, _ := m.Update(keyDown); down.Selected != 0 {
		t.Fatalf("first down should land on A, got %d", down.Selected)
	}
	if up, _ := m.Update(keyUp); up.Selected != 0 {
		t.Fatalf("first up should land on A, got %d", up.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if m.Selected != 2 {
		t.Fatalf("letter c should select 2, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if m.Selected != 2 {
		t.Fatalf("letter beyond the options should be ignored, got %d", m.Selected)
	}
	m, _ = m.Update(keyUp)
	if m.Selected != 1 {
		t.Fatalf("up should move to 1, got %d", m.Selected)
	}

	m.Reveal(1, 1)
	if !m.IsCorrect() {
		t.Error("chosen equals correct")
	}
	m, _ = m.Update(keyDown)
	if m.Selected != 1 {
		t.Error("revealed selector must not move")
	}
	if !strings.Contains(m.View(), "B)") {
		t.Error("view should label options with letters")
	}
}

func TestOptionLabel(t *testing.T) {
	if OptionLabel(0) != "A" || OptionLabel(3) != "D" {
		t.Errorf("unexpected labels %q %q", OptionLabel(0), OptionLabel(3))
	}
}

func TestScoreColor(t *testing.T) {
	tests := []struct {
		score int
		want  any
	}{
		{100, theme.Success},
		{70, theme.Success},
		{69, theme.Accent},
		{40, theme.Accent},
		{39, theme.Error},
		{0, theme.Error},
	}
	for _, tt := range tests {
		if got := ScoreColor(tt.score); got != tt.want {
			t.Errorf("ScoreColor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestButtonFiresOnKey(t *testing.T) {
	pressed := false
	b := NewButton("Voltar", "enter", true, func() tea.Cmd { pressed = true; return nil })
	b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if pressed {
		t.Fatal("other keys must not press the button")
	}
	b.Update(keyEnter)
	if !pressed {
		t.Fatal("enter should press the button")
	}

	pressed = false
	b.Active = false
	b.Update(keyEnter)
	if pressed {
		t.Error("inactive button must not fire")
	}
}
