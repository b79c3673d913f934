package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/ui/theme"
)

// MultiChoice is a lettered option selector. It only tracks the cursor;
// grading is done by the caller, which then calls Reveal. Selected is -1
// until the first cursor move.
type MultiChoice struct {
	Options  []string
	Selected int
	Revealed bool
	Chosen   int
	Correct  int
	Width    int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string, width int) MultiChoice {
	return MultiChoice{
		Options:  options,
		Selected: -1,
		Chosen:   -1,
		Correct:  -1,
		Width:    width,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with arrows, j/k, or the option letter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		} else if len(m.Options) > 0 {
			m.Selected = 0
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if i, ok := letterIndex(key); ok && i < len(m.Options) {
			m.Selected = i
		}
	}

	return m, nil
}

// Reveal freezes the selector and marks the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.Chosen = chosen
	m.Correct = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	style := lipgloss.NewStyle()
	if m.Width > 0 {
		style = style.Width(m.Width)
	}

	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabel(i), opt)

		switch {
		case m.Revealed && i == m.Correct:
			s += style.Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Revealed && i == m.Chosen:
			s += style.Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Revealed:
			s += style.Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += style.Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += style.Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// HasSelection reports whether an option is under the cursor.
func (m MultiChoice) HasSelection() bool {
	return m.Selected >= 0 && m.Selected < len(m.Options)
}

// IsCorrect returns true if the revealed choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Chosen == m.Correct
}

// OptionLabel returns the letter shown before option i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

func letterIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'h':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'H':
		return int(c - 'A'), true
	}
	return 0, false
}
