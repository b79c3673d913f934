package home

import (
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/stats"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Balanced scales
	MascotCelebrating                      // Streak of three days or more
	MascotAlert                            // Accuracy below half
)

const mascotIdle = `    ⚖
 ┌──┴──┐
 │ ◉ ◉ │
 │  ‿  │
 └─┬─┬─┘
  ═╧═╧═`

const mascotCelebrating = `  ★ ⚖ ★
 ┌──┴──┐
 │ ^ ^ │
 │  ▽  │
 └─┬─┬─┘
  ═╧═╧═`

const mascotAlert = `    ⚖
 ┌──┴──┐ !
 │ ◉ ◉ │
 │  ~  │
 └─┬─┬─┘
  ═╧═╧═`

// minAnswersForAlert keeps the alert off until there is enough data.
const minAnswersForAlert = 5

// mascotFor picks the variant matching the learner's numbers.
func mascotFor(st stats.UserStats) MascotVariant {
	switch {
	case st.StreakDays >= 3:
		return MascotCelebrating
	case st.QuestionsSolved >= minAnswersForAlert && st.Accuracy < 50:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
