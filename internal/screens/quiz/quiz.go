package quiz

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/jusmind/jusmind/internal/quiz"
	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// QuizScreen implements screen.Screen for a practice session.
type QuizScreen struct {
	session *qz.Session
	gen     qz.Generator

	choices    components.MultiChoice
	draft      textarea.Model
	spinner    spinner.Model
	commentary viewport.Model
	ticking    bool

	notice string
	width  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz over topic. contextTag selects an exam profile and may
// be empty. sink may be nil.
func New(gen qz.Generator, topic, contextTag string, sink qz.StatsSink) *QuizScreen {
	var opts []qz.Option
	if sink != nil {
		opts = append(opts, qz.WithStats(sink))
	}

	draft := textarea.New()
	draft.Placeholder = "Redija sua resposta..."
	draft.ShowLineNumbers = false
	draft.SetHeight(6)

	return &QuizScreen{
		session: qz.New(topic, contextTag, opts...),
		gen:     gen,
		draft:   draft,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		commentary: viewport.New(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	f, ok := s.session.Start()
	if !ok {
		return nil
	}
	return tea.Batch(s.fetch(f), s.startSpinner())
}

func (s *QuizScreen) Title() string {
	if tag := s.session.ContextTag(); tag != "" {
		return s.session.Topic() + " · " + tag
	}
	return s.session.Topic()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	q, _ := s.session.Current()
	switch s.session.Phase() {
	case qz.PhasePresenting:
		if q.IsDiscursive() {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Enviar"},
				{Key: "Ctrl+R", Description: "Novas questões"},
				{Key: "Esc", Description: "Voltar"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Escolher"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Ctrl+R", Description: "Novas questões"},
			{Key: "Esc", Description: "Voltar"},
		}
	case qz.PhaseAnswered:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Próxima"}}
		if q.IsDiscursive() && !s.session.DeepDivePending() {
			if _, done := s.session.DeepDive(); !done {
				hints = append(hints, layout.KeyHint{Key: "D", Description: "Aprofundar"})
			}
		}
		return append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Rolar"},
			layout.KeyHint{Key: "Esc", Description: "Voltar"},
		)
	case qz.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "R", Description: "Novas questões"},
			{Key: "Enter", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Voltar"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsReadyMsg:
		return s.handleItems(msg)

	case deepDiveReadyMsg:
		return s.handleDeepDive(msg)

	case spinner.TickMsg:
		if !s.busy() {
			s.ticking = false
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.discursivePresenting() {
		var cmd tea.Cmd
		s.draft, cmd = s.draft.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleItems(msg itemsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.session.ID() || !s.session.Deliver(msg.Fetch, msg.Items) {
		return s, nil
	}
	return s, s.prepareItem()
}

func (s *QuizScreen) handleDeepDive(msg deepDiveReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.session.ID() {
		return s, nil
	}
	if s.session.DeliverDeepDive(msg.Fetch, msg.Text) {
		s.refreshCommentary()
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+r" {
		return s.regenerate()
	}

	switch s.session.Phase() {
	case qz.PhasePresenting:
		s.notice = ""
		if s.discursivePresenting() {
			if key == "ctrl+s" {
				return s.submitDraft()
			}
			var cmd tea.Cmd
			s.draft, cmd = s.draft.Update(msg)
			return s, cmd
		}
		if key == "enter" {
			return s.submitChoice()
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		return s, cmd

	case qz.PhaseAnswered:
		switch key {
		case "enter", "n", "right":
			s.session.Advance()
			return s, s.prepareItem()
		case "d", "D":
			return s.requestDeepDive()
		case "up", "k":
			s.commentary.ScrollUp(1)
		case "down", "j":
			s.commentary.ScrollDown(1)
		case "pgup":
			s.commentary.PageUp()
		case "pgdown":
			s.commentary.PageDown()
		}
		return s, nil

	case qz.PhaseCompleted:
		switch key {
		case "r", "R":
			return s.regenerate()
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *QuizScreen) submitChoice() (screen.Screen, tea.Cmd) {
	if len(s.choices.Options) == 0 {
		s.notice = "Esta questão não tem alternativas. Use Ctrl+R para gerar novas questões."
		return s, nil
	}
	if s.choices.HasSelection() {
		if err := s.session.Select(s.choices.Selected); err != nil {
			return s, nil
		}
	}
	out, err := s.session.Submit()
	if errors.Is(err, qz.ErrNoAnswer) {
		s.notice = "Escolha uma alternativa antes de confirmar."
		return s, nil
	}
	if err != nil {
		return s, nil
	}
	s.choices.Reveal(out.Selected, out.CorrectIndex)
	s.refreshCommentary()
	return s, nil
}

func (s *QuizScreen) submitDraft() (screen.Screen, tea.Cmd) {
	if err := s.session.SetDraft(s.draft.Value()); err != nil {
		return s, nil
	}
	if _, err := s.session.Submit(); err != nil {
		if errors.Is(err, qz.ErrNoAnswer) {
			s.notice = "Escreva sua resposta antes de enviar."
		}
		return s, nil
	}
	s.draft.Blur()
	s.refreshCommentary()
	return s, nil
}

func (s *QuizScreen) requestDeepDive() (screen.Screen, tea.Cmd) {
	f, ok := s.session.RequestDeepDive()
	if !ok {
		return s, nil
	}
	s.refreshCommentary()

	id, gen := s.session.ID(), s.gen
	run := func() tea.Msg {
		return deepDiveReadyMsg{SessionID: id, Fetch: f, Text: f.Run(context.Background(), gen)}
	}
	return s, tea.Batch(run, s.startSpinner())
}

func (s *QuizScreen) regenerate() (screen.Screen, tea.Cmd) {
	f, ok := s.session.Regenerate()
	if !ok {
		return s, nil
	}
	s.notice = ""
	return s, tea.Batch(s.fetch(f), s.startSpinner())
}

// prepareItem resets the answer widgets for the current item.
func (s *QuizScreen) prepareItem() tea.Cmd {
	s.notice = ""
	s.commentary.SetContent("")
	s.commentary.GotoTop()

	q, ok := s.session.Current()
	if !ok {
		return nil
	}
	if q.IsDiscursive() {
		s.draft.Reset()
		return s.draft.Focus()
	}
	s.choices = components.NewMultiChoice(q.Choices(), 0)
	return nil
}

func (s *QuizScreen) fetch(f qz.Fetch) tea.Cmd {
	id, gen := s.session.ID(), s.gen
	return func() tea.Msg {
		return itemsReadyMsg{SessionID: id, Fetch: f, Items: f.Run(context.Background(), gen)}
	}
}

func (s *QuizScreen) startSpinner() tea.Cmd {
	if s.ticking {
		return nil
	}
	s.ticking = true
	return s.spinner.Tick
}

func (s *QuizScreen) busy() bool {
	return s.session.Phase() == qz.PhaseLoading || s.session.DeepDivePending()
}

func (s *QuizScreen) discursivePresenting() bool {
	if s.session.Phase() != qz.PhasePresenting {
		return false
	}
	q, _ := s.session.Current()
	return q.IsDiscursive()
}
