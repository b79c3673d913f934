package exams

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/catalog"
	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// Starter builds the practice screen for a topic and context tag.
type Starter func(topic, contextTag string) screen.Screen

// ExamsScreen lists the archived exams of one subject, grouped by
// institution kind, plus an AI mock exam.
type ExamsScreen struct {
	subject string
	menu    components.Menu
}

var _ screen.Screen = (*ExamsScreen)(nil)
var _ screen.KeyHintProvider = (*ExamsScreen)(nil)

// New creates the exam list for subject.
func New(subject string, start Starter) *ExamsScreen {
	push := func(topic, tag string) func() tea.Cmd {
		return func() tea.Cmd {
			next := start(topic, tag)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	items := []components.MenuItem{{
		Label:  "Simulado com IA",
		Detail: catalog.SimulatedExamTag,
		Action: push(subject, catalog.SimulatedExamTag),
	}}

	var section catalog.Kind
	for _, e := range catalog.ExamsFor(subject) {
		inst, _ := catalog.InstitutionByName(e.Institution)
		if inst.Kind != section {
			section = inst.Kind
			items = append(items, components.MenuItem{Label: "── " + section.Label(), Disabled: true})
		}
		topic, tag := e.Session()
		items = append(items, components.MenuItem{
			Label:  e.Institution,
			Detail: fmt.Sprintf("%d · %s", e.Year, e.Period),
			Action: push(topic, tag),
		})
	}

	return &ExamsScreen{
		subject: subject,
		menu:    components.NewMenu(items),
	}
}

func (e *ExamsScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamsScreen) Title() string {
	return "Acervo · " + e.subject
}

func (e *ExamsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Resolver prova"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (e *ExamsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	e.menu, cmd = e.menu.Update(msg)
	return e, cmd
}

func (e *ExamsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(e.subject))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n")
	b.WriteString(e.menu.ViewWindow(max(height-4, 3)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Padding(1, 0).Render(b.String()))
}
