package chat

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// replyMsg carries the tutor's answer to a turn.
type replyMsg struct {
	Turn chat.Turn
	Text string
}

// ChatScreen is the tutor conversation.
type ChatScreen struct {
	conv    *chat.Conversation
	replier chat.Replier

	input   textarea.Model
	log     viewport.Model
	spinner spinner.Model
	ticking bool

	notice string
	width  int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen backed by r.
func New(r chat.Replier, opts ...chat.Option) *ChatScreen {
	input := textarea.New()
	input.Placeholder = "Pergunte sobre um tema, artigo ou caso prático..."
	input.ShowLineNumbers = false
	input.SetHeight(3)

	return &ChatScreen{
		conv:    chat.New(opts...),
		replier: r,
		input:   input,
		log:     viewport.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Focus()
}

func (c *ChatScreen) Title() string {
	return "Tutor IA · " + c.conv.Mode().Label()
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "Ctrl+T", Description: "Modo"},
		{Key: "Ctrl+R", Description: "Nova conversa"},
		{Key: "PgUp/PgDn", Description: "Rolar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if c.conv.Resolve(msg.Turn, msg.Text) {
			c.log.GotoBottom()
		}
		return c, nil

	case spinner.TickMsg:
		if !c.conv.Awaiting() {
			c.ticking = false
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return c.send()
	case "ctrl+t":
		if c.conv.Mode() == chat.ModeSocratic {
			c.conv.SetMode(chat.ModeResolver)
		} else {
			c.conv.SetMode(chat.ModeSocratic)
		}
		return c, nil
	case "ctrl+r":
		c.conv.Reset()
		c.notice = ""
		c.input.Reset()
		return c, nil
	case "pgup":
		c.log.PageUp()
		return c, nil
	case "pgdown":
		c.log.PageDown()
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	turn, err := c.conv.Submit(c.input.Value())
	switch {
	case errors.Is(err, chat.ErrAwaiting):
		c.notice = "Aguarde a resposta do tutor."
		return c, nil
	case err != nil:
		return c, nil
	}

	c.notice = ""
	c.input.Reset()
	c.log.GotoBottom()

	r := c.replier
	ask := func() tea.Msg {
		return replyMsg{Turn: turn, Text: r.Converse(context.Background(), turn.History, turn.Prompt)}
	}
	if c.ticking {
		return c, ask
	}
	c.ticking = true
	return c, tea.Batch(ask, c.spinner.Tick)
}
