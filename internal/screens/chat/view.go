package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	c.width = width
	inner := max(width-4, 20)

	c.input.SetWidth(inner)
	footer := c.input.View()
	if c.notice != "" {
		footer = lipgloss.NewStyle().Foreground(theme.Accent).Render(c.notice) + "\n" + footer
	}

	atBottom := c.log.AtBottom()
	c.log.SetWidth(inner)
	c.log.SetHeight(max(height-lipgloss.Height(footer)-1, 3))
	c.log.SetContent(c.renderLog(inner))
	if atBottom {
		c.log.GotoBottom()
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(c.log.View() + "\n" + footer)
}

// renderLog lays out the messages: the student on the right, the tutor on
// the left.
func (c *ChatScreen) renderLog(width int) string {
	bubbleWidth := max(width*3/4, 16)

	var parts []string
	for _, m := range c.conv.Messages() {
		parts = append(parts, renderMessage(m, c.spinner.View(), width, bubbleWidth))
	}
	return strings.Join(parts, "\n\n")
}

func renderMessage(m chat.Message, spin string, width, bubbleWidth int) string {
	switch {
	case m.Role == chat.RoleUser:
		bubble := theme.UserBubble.MaxWidth(bubbleWidth).Render(wrapText(m.Text, bubbleWidth-2))
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	case m.Pending:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(spin + " O JusMind está escrevendo...")
	case m.Failed:
		return theme.FailedBubble.Render(wrapText(m.Text, bubbleWidth-4))
	default:
		return theme.ModelBubble.Render(wrapText(m.Text, bubbleWidth-4))
	}
}

func wrapText(text string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 8)).Render(text)
}
