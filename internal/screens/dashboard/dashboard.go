package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/stats"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// Source provides the statistics shown on the dashboard.
type Source interface {
	Snapshot() stats.UserStats
}

// DashboardScreen displays usage statistics.
type DashboardScreen struct {
	source Source
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard reading from source on every render.
func New(source Source) *DashboardScreen {
	return &DashboardScreen{source: source}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Estatísticas"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Voltar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	st := d.source.Snapshot()
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Seu desempenho"))
	b.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Questões", fmt.Sprintf("%d", st.QuestionsSolved), theme.Secondary),
		statCard("Acerto", fmt.Sprintf("%d%%", st.Accuracy), components.ScoreColor(st.Accuracy)),
		statCard("Sequência", fmt.Sprintf("%d d", st.StreakDays), theme.Accent),
	)
	b.WriteString(center.Render(cards))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(center.Foreground(theme.TextDim).Render("Desempenho por matéria"))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n\n")

	if len(st.TopicPerformance) == 0 {
		b.WriteString(center.Inherit(theme.Hint).Render("Responda algumas questões para ver seu desempenho."))
	}
	for _, tp := range st.TopicPerformance {
		bar := components.NewProgressBar(fmt.Sprintf("%-24s", truncate(tp.Topic, 24)), float64(tp.Score)/100, true, cw)
		bar.Fill = components.ScoreColor(tp.Score)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 0).Render(b.String()))
}

func statCard(label, value string, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(16).
		Align(lipgloss.Center).
		Margin(0, 1).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" +
			lipgloss.NewStyle().Foreground(accent).Bold(true).Render(value))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
