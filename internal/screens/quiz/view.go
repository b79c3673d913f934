package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/question"
	qz "github.com/jusmind/jusmind/internal/quiz"
	"github.com/jusmind/jusmind/internal/ui/components"
	"github.com/jusmind/jusmind/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	s.width = width

	switch s.session.Phase() {
	case qz.PhaseNew, qz.PhaseLoading:
		return s.renderLoading(width, height)
	case qz.PhaseCompleted:
		return s.renderCompleted(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *QuizScreen) renderLoading(width, height int) string {
	text := fmt.Sprintf("%s Gerando questões de %s...", s.spinner.View(), s.session.Topic())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
}

func (s *QuizScreen) renderCompleted(width, height int) string {
	total := s.session.Total()
	if total == 0 {
		msg := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("Não foi possível gerar questões agora.")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Verifique a conexão com o provedor e pressione R para tentar novamente.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg+"\n\n"+hint)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Sessão concluída!"))
	b.WriteString("\n\n")

	var line string
	var ratio float64
	if s.session.Objective() {
		line = fmt.Sprintf("Acertos: %d de %d", s.session.Score(), total)
		ratio = float64(s.session.Score()) / float64(total)
	} else {
		line = fmt.Sprintf("Questões praticadas: %d de %d", s.session.Practiced(), total)
		ratio = float64(s.session.Practiced()) / float64(total)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", ratio, true, min(width-8, 50))
	bar.Fill = components.ScoreColor(int(ratio * 100))
	b.WriteString(bar.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderQuestionView renders the current item and, once answered, the
// outcome and commentary.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}
	inner := max(width-4, 20)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(q, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if q.IsObjective() {
		s.choices.Width = inner
		b.WriteString(s.choices.View())
	} else if s.session.Phase() == qz.PhasePresenting {
		s.draft.SetWidth(inner)
		b.WriteString(s.draft.View())
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
		b.WriteString("\n")
	}

	if s.session.Phase() == qz.PhaseAnswered {
		b.WriteString(s.renderOutcome())
		b.WriteString("\n")

		used := lipgloss.Height(b.String())
		s.commentary.SetWidth(inner)
		s.commentary.SetHeight(max(height-used-1, 3))
		b.WriteString(s.commentary.View())
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (s *QuizScreen) renderInfoLine(q question.Question, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s · %s", q.Difficulty.Label(), kindLabel(q)))

	tally := fmt.Sprintf("%s %d", lipgloss.NewStyle().Foreground(theme.Success).Render("✔"), s.session.Score())
	if !s.session.Objective() {
		tally = fmt.Sprintf("%s %d", lipgloss.NewStyle().Foreground(theme.Success).Render("✎"), s.session.Practiced())
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s", s.session.Index()+1, s.session.Total(), tally))

	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *QuizScreen) renderOutcome() string {
	out, ok := s.session.LastOutcome()
	if !ok {
		return ""
	}

	var line string
	switch {
	case out.Kind == question.KindDiscursive:
		line = theme.Correct.Render("✎ Resposta registrada. Compare com o espelho abaixo.")
	case out.Correct:
		line = theme.Correct.Render("✔ Resposta correta!")
	default:
		line = theme.Incorrect.Render(fmt.Sprintf("✘ Resposta incorreta. Gabarito: %s", components.OptionLabel(out.CorrectIndex)))
	}

	if out.Kind == question.KindObjective && !out.Scoreable {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("⚠ Gabarito ausente: a correção considerou a alternativa %s.", components.OptionLabel(out.CorrectIndex)))
	}
	return line
}

// refreshCommentary rebuilds the commentary viewport content.
func (s *QuizScreen) refreshCommentary() {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Comentário"))
	b.WriteString("\n")
	b.WriteString(s.wrap(s.session.Commentary()))

	if text, ok := s.session.DeepDive(); ok {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Análise do examinador"))
		b.WriteString("\n")
		b.WriteString(s.wrap(text))
	} else if s.session.DeepDivePending() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Analisando sua resposta..."))
	}

	s.commentary.SetContent(b.String())
}

func (s *QuizScreen) wrap(text string) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if s.width > 8 {
		style = style.Width(s.width - 6)
	}
	return style.Render(text)
}

func kindLabel(q question.Question) string {
	if q.IsDiscursive() {
		return "Discursiva"
	}
	return "Objetiva"
}
