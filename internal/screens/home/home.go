package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/lessons"
	qz "github.com/jusmind/jusmind/internal/quiz"
	"github.com/jusmind/jusmind/internal/router"
	"github.com/jusmind/jusmind/internal/screen"
	chatscreen "github.com/jusmind/jusmind/internal/screens/chat"
	"github.com/jusmind/jusmind/internal/screens/dashboard"
	"github.com/jusmind/jusmind/internal/screens/exams"
	"github.com/jusmind/jusmind/internal/screens/lesson"
	"github.com/jusmind/jusmind/internal/screens/placeholder"
	quizscreen "github.com/jusmind/jusmind/internal/screens/quiz"
	"github.com/jusmind/jusmind/internal/screens/subjects"
	"github.com/jusmind/jusmind/internal/stats"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/layout"
)

// Generator is the generative backend of the practice, tutor and lesson
// screens. generation.Client satisfies it.
type Generator interface {
	qz.Generator
	chat.Replier
}

// Services are the collaborators of the screens reachable from home.
type Services struct {
	// Generator is nil when no provider is configured; the screens that
	// need it are then replaced by a notice.
	Generator Generator

	Lessons     *lessons.Service
	Stats       *stats.Tracker
	ChatOptions []chat.Option
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	services   Services
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc Services) *HomeScreen {
	h := &HomeScreen{services: svc}

	entries := []struct {
		label  string
		action func() tea.Cmd
	}{
		{"BANCO DE QUESTÕES", h.push("Banco de Questões", h.openQuestionBank)},
		{"ACERVO DE PROVAS", h.push("Acervo de Provas", h.openExamArchive)},
		{"TUTOR IA", h.push("Tutor IA", h.openTutor)},
		{"AULAS", h.push("Aulas", h.openLessons)},
		{"ESTATÍSTICAS", func() tea.Cmd {
			return pushCmd(dashboard.New(svc.Stats))
		}},
		{"SAIR", func() tea.Cmd { return tea.Quit }},
	}

	items := make([]components.MenuItem, len(entries))
	for i, e := range entries {
		h.menuLabels = append(h.menuLabels, e.label)
		items[i] = components.MenuItem{Label: e.label, Action: e.action}
	}
	h.menu = components.NewMenu(items)
	return h
}

// push returns a menu action opening the screen built by open, or the
// not-configured notice when there is no generator.
func (h *HomeScreen) push(title string, open func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		if h.services.Generator == nil {
			return pushCmd(placeholder.New(title, placeholder.NotConfigured))
		}
		return pushCmd(open())
	}
}

func (h *HomeScreen) openQuestionBank() screen.Screen {
	return subjects.New("Banco de Questões", "Escolha uma matéria para praticar.", func(subject string) screen.Screen {
		return h.newQuiz(subject, "")
	})
}

func (h *HomeScreen) openExamArchive() screen.Screen {
	return subjects.New("Acervo de Provas", "Busque a matéria para ver as provas anteriores.", func(subject string) screen.Screen {
		return exams.New(subject, h.newQuiz)
	})
}

func (h *HomeScreen) openTutor() screen.Screen {
	return chatscreen.New(h.services.Generator, h.services.ChatOptions...)
}

func (h *HomeScreen) openLessons() screen.Screen {
	return subjects.New("Aulas", "Escolha a matéria da aula.", func(subject string) screen.Screen {
		return lesson.New(h.services.Lessons, subject)
	})
}

func (h *HomeScreen) newQuiz(topic, contextTag string) screen.Screen {
	var sink qz.StatsSink
	if h.services.Stats != nil {
		sink = h.services.Stats
	}
	return quizscreen.New(h.services.Generator, topic, contextTag, sink)
}

func pushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "k":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "j":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate
	// the terminal height.
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight+2) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var st stats.UserStats
	if h.services.Stats != nil {
		st = h.services.Stats.Snapshot()
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))
	if h.services.Generator == nil {
		sections = append(sections, renderLLMBanner(cw))
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Início"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}
