package lesson

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/catalog"
	"github.com/jusmind/jusmind/internal/lessons"
	"github.com/jusmind/jusmind/internal/screen"
	"github.com/jusmind/jusmind/internal/ui/layout"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

// lessonReadyMsg carries a generated lesson.
type lessonReadyMsg struct {
	Request int
	Lesson  lessons.Lesson
}

// LessonScreen shows a generated lesson for one subject.
type LessonScreen struct {
	service *lessons.Service
	module  catalog.Module

	lesson  *lessons.Lesson
	request int

	body    viewport.Model
	spinner spinner.Model
	width   int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen for subject.
func New(service *lessons.Service, subject string) *LessonScreen {
	module := catalog.Module{Title: subject}
	for _, m := range catalog.Modules() {
		if m.Title == subject {
			module = m
			break
		}
	}
	return &LessonScreen{
		service: service,
		module:  module,
		body:    viewport.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return tea.Batch(l.generate(), l.spinner.Tick)
}

func (l *LessonScreen) Title() string {
	return "Aula · " + l.module.Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.lesson == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Voltar"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓/PgUp/PgDn", Description: "Rolar"},
		{Key: "R", Description: "Gerar de novo"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		if msg.Request != l.request {
			return l, nil
		}
		l.lesson = &msg.Lesson
		l.body.SetContent(l.renderLesson())
		l.body.GotoTop()
		return l, nil

	case spinner.TickMsg:
		if l.lesson != nil {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyMsg:
		if l.lesson == nil {
			return l, nil
		}
		switch msg.String() {
		case "r", "R":
			l.lesson = nil
			return l, tea.Batch(l.generate(), l.spinner.Tick)
		case "up", "k":
			l.body.ScrollUp(1)
		case "down", "j":
			l.body.ScrollDown(1)
		case "pgup":
			l.body.PageUp()
		case "pgdown", "space":
			l.body.PageDown()
		}
	}
	return l, nil
}

func (l *LessonScreen) generate() tea.Cmd {
	l.request++
	req, svc, topic := l.request, l.service, l.module.Title
	return func() tea.Msg {
		return lessonReadyMsg{Request: req, Lesson: svc.Generate(context.Background(), topic)}
	}
}

func (l *LessonScreen) View(width, height int) string {
	l.width = width
	if l.lesson == nil {
		text := fmt.Sprintf("%s Preparando a aula de %s...", l.spinner.View(), l.module.Title)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
	}

	inner := max(width-4, 20)
	if l.body.Width() != inner {
		l.body.SetWidth(inner)
		l.body.SetContent(l.renderLesson())
	}
	l.body.SetHeight(max(height-1, 3))
	return lipgloss.NewStyle().Padding(0, 2).Render(l.body.View())
}

func (l *LessonScreen) renderLesson() string {
	width := max(l.width-6, 20)
	text := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(heading.Render(l.module.Title))
	b.WriteString("\n")
	if l.module.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.TextDim).Italic(true).Render(l.module.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if l.lesson.Failed {
		b.WriteString(theme.Incorrect.Render(l.lesson.Content))
		return b.String()
	}

	b.WriteString(text.Render(l.lesson.Content))
	if l.lesson.KeyConcepts != "" {
		b.WriteString("\n\n")
		b.WriteString(heading.Render("Conceitos-chave"))
		b.WriteString("\n")
		b.WriteString(text.Render(l.lesson.KeyConcepts))
	}
	return b.String()
}
