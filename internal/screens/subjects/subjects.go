package subjects

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

// Opener builds the screen pushed when a subject is picked.
type Opener func(subject string) screen.Screen

// SubjectsScreen is a searchable subject picker.
type SubjectsScreen struct {
	title   string
	caption string
	open    Opener

	search  components.TextInput
	menu    components.Menu
	query   string
	matches []string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New creates a picker titled title. caption is shown above the list.
func New(title, caption string, open Opener) *SubjectsScreen {
	s := &SubjectsScreen{
		title:   title,
		caption: caption,
		open:    open,
		search:  components.NewTextInput("Buscar: ", "ex.: civil, penal, tributario", 40),
	}
	s.filter()
	return s
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *SubjectsScreen) Title() string {
	return s.title
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Digite", Description: "Filtrar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "enter":
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != s.query {
		s.filter()
	}
	return s, cmd
}

// filter rebuilds the list from the current query.
func (s *SubjectsScreen) filter() {
	s.query = s.search.Value()
	s.matches = catalog.SearchSubjects(s.query)

	items := make([]components.MenuItem, len(s.matches))
	for i, subject := range s.matches {
		items[i] = components.MenuItem{Label: subject, Action: s.action(subject)}
	}
	s.menu.SetItems(items)
}

func (s *SubjectsScreen) action(subject string) func() tea.Cmd {
	return func() tea.Cmd {
		next := s.open(subject)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (s *SubjectsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	if s.caption != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(s.caption))
		b.WriteString("\n\n")
	}
	b.WriteString(s.search.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n")

	if len(s.matches) == 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Nenhuma matéria encontrada para %q.", s.query)))
	} else {
		rows := max(height-lipgloss.Height(b.String())-2, 3)
		b.WriteString(s.menu.ViewWindow(rows))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Padding(1, 0).Render(b.String()))
}
