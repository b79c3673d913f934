package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/stats"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = `      ██╗██╗   ██╗███████╗███╗   ███╗██╗███╗   ██╗██████╗
      ██║██║   ██║██╔════╝████╗ ████║██║████╗  ██║██╔══██╗
      ██║██║   ██║███████╗██╔████╔██║██║██╔██╗ ██║██║  ██║
 ██   ██║██║   ██║╚════██║██║╚██╔╝██║██║██║╚██╗██║██║  ██║
 ╚█████╔╝╚██████╔╝███████║██║ ╚═╝ ██║██║██║ ╚████║██████╔╝
  ╚════╝  ╚═════╝ ╚══════╝╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝`

const titleCompact = "J · U · S · M · I · N · D"

// titleMinWidth is the narrowest content width that fits titleFull.
const titleMinWidth = 58

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	art := titleFull
	if compact || cw < titleMinWidth {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the dashboard numbers in a bordered box matching
// content width.
func renderStatsBar(st stats.UserStats, cw int, compact bool) string {
	solvedStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	accuracyStyle := lipgloss.NewStyle().Foreground(components.ScoreColor(st.Accuracy)).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	accuracy := dimStyle.Render("— ACERTO")
	if st.QuestionsSolved > 0 {
		accuracy = accuracyStyle.Render(fmt.Sprintf("%d%% ACERTO", st.Accuracy))
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			solvedStyle.Render(fmt.Sprintf("✔%d", st.QuestionsSolved)),
			accuracyStyle.Render(fmt.Sprintf("%d%%", st.Accuracy)),
			streakStyle.Render(fmt.Sprintf("★%d", st.StreakDays)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			solvedStyle.Render(fmt.Sprintf("✔ %d QUESTÕES", st.QuestionsSolved)),
			accuracy,
			streakStyle.Render(fmt.Sprintf("★ %d DIAS", st.StreakDays)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for terminals where
// bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

const llmBannerText = "⚠ Nenhuma IA configurada. Veja jusmind --help"

// renderLLMBanner renders a warning when no generative provider is
// configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(llmBannerText)
}

// renderMascotBox renders the mascot in a card at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return components.ArcadeCard(RenderMascot(variant), cw)
}
