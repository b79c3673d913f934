package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// NotConfigured explains how to enable the generator-backed features.
const NotConfigured = "Nenhum provedor de IA configurado.\n\n" +
	"Defina GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY\n" +
	"ou OPENROUTER_API_KEY (ou JUSMIND_LLM_PROVIDER) e reinicie.\n\n" +
	"Veja jusmind --help."

// PlaceholderScreen shows a fixed notice in place of a feature that cannot
// run.
type PlaceholderScreen struct {
	title string
	text  string
	back  components.Button
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen with the given title and notice.
func New(title, text string) *PlaceholderScreen {
	return &PlaceholderScreen{
		title: title,
		text:  text,
		back: components.NewButton("Voltar", "enter", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.back, cmd = p.back.Update(msg)
	return p, cmd
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.text + "\n\n" + p.back.View())

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Voltar"},
		{Key: "Esc", Description: "Voltar"},
	}
}
