package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/question"
	"github.com/jusmind/jusmind/internal/quiz"
	"github.com/jusmind/jusmind/internal/stats"
	"github.com/jusmind/jusmind/internal/ui/components"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer a practice set in the terminal, one line at a time",
	Example: `  jusmind quiz --topic "Direito Civil"
  jusmind quiz --topic "Direito Penal" --context "OAB 2ª fase - Peça"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		contextTag, _ := cmd.Flags().GetString("context")
		if strings.TrimSpace(topic) == "" {
			return fmt.Errorf("--topic is required")
		}

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		gen, err := rt.generator()
		if err != nil {
			return err
		}

		tracker := stats.NewTracker(rt.log)
		s := quiz.New(topic, contextTag, quiz.WithStats(tracker))
		return playQuiz(cmd.Context(), s, gen, newLineReader(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

func init() {
	quizCmd.Flags().StringP("topic", "t", "", "Subject or free-form theme")
	quizCmd.Flags().StringP("context", "c", "", "Exam context, e.g. OAB, TJRJ or \"OAB 2ª fase - Peça\"")
}

// playQuiz runs s to completion against gen, reading answers from in.
// End of input stops the session early.
func playQuiz(ctx context.Context, s *quiz.Session, gen quiz.Generator, in *lineReader) error {
	out := in.out
	fmt.Fprintf(out, "Gerando questões de %s...\n", s.Topic())
	s.Load(ctx, gen)
	if s.Total() == 0 {
		fmt.Fprintln(out, "Não foi possível gerar questões agora.")
		return nil
	}

	for s.Phase() == quiz.PhasePresenting {
		q, _ := s.Current()
		fmt.Fprintf(out, "\nQuestão %d de %d · %s\n\n%s\n\n", s.Index()+1, s.Total(), q.Difficulty.Label(), q.Text)

		if !answer(s, in) {
			return nil
		}
		o, _ := s.LastOutcome()
		printOutcome(out, o)
		fmt.Fprintf(out, "\nComentário:\n%s\n", s.Commentary())

		if o.Kind == question.KindDiscursive {
			yes, ok := in.line("Ver análise do examinador? [s/N] ")
			if !ok {
				return nil
			}
			if strings.EqualFold(yes, "s") {
				deepDive(ctx, s, gen, out)
			}
		}
		s.Advance()
	}

	if s.Objective() {
		fmt.Fprintf(out, "\nSessão concluída! Acertos: %d de %d\n", s.Score(), s.Total())
	} else {
		fmt.Fprintf(out, "\nSessão concluída! Questões praticadas: %d de %d\n", s.Practiced(), s.Total())
	}
	return nil
}

// answer reads and submits an answer for the current item. It returns
// false at end of input.
func answer(s *quiz.Session, in *lineReader) bool {
	q, _ := s.Current()
	if !q.IsObjective() {
		for {
			text, ok := in.block("Sua resposta (termine com uma linha contendo apenas \".\"):")
			if !ok {
				return false
			}
			if err := s.SetDraft(text); err == nil {
				if _, err := s.Submit(); err == nil {
					return true
				}
			}
			fmt.Fprintln(in.out, "Escreva sua resposta antes de enviar.")
		}
	}

	choices := q.Choices()
	if len(choices) == 0 {
		fmt.Fprintln(in.out, "Questão sem alternativas; sessão encerrada.")
		return false
	}
	for i, c := range choices {
		fmt.Fprintf(in.out, "  %s) %s\n", components.OptionLabel(i), c)
	}
	for {
		text, ok := in.line("\nAlternativa: ")
		if !ok {
			return false
		}
		idx := optionIndex(text, len(choices))
		if idx < 0 {
			fmt.Fprintf(in.out, "Escolha uma letra entre A e %s.\n", components.OptionLabel(len(choices)-1))
			continue
		}
		if err := s.Select(idx); err != nil {
			fmt.Fprintln(in.out, err)
			continue
		}
		if _, err := s.Submit(); err == nil {
			return true
		}
	}
}

// optionIndex maps a letter answer to an option index, or -1.
func optionIndex(text string, n int) int {
	if len(text) != 1 {
		return -1
	}
	c := text[0] | 0x20 // lower case
	i := int(c) - 'a'
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func printOutcome(w io.Writer, o quiz.Outcome) {
	switch {
	case o.Kind == question.KindDiscursive:
		fmt.Fprintln(w, "\n✎ Resposta registrada.")
	case !o.Scoreable:
		fmt.Fprintf(w, "\n⚠ Gabarito ausente: a correção considerou a alternativa %s.\n", components.OptionLabel(o.CorrectIndex))
	case o.Correct:
		fmt.Fprintln(w, "\n✔ Resposta correta!")
	default:
		fmt.Fprintf(w, "\n✘ Resposta incorreta. Gabarito: %s\n", components.OptionLabel(o.CorrectIndex))
	}
}

func deepDive(ctx context.Context, s *quiz.Session, gen quiz.Generator, w io.Writer) {
	f, ok := s.RequestDeepDive()
	if !ok {
		return
	}
	fmt.Fprintln(w, "Analisando sua resposta...")
	s.DeliverDeepDive(f, f.Run(ctx, gen))
	if text, ok := s.DeepDive(); ok {
		fmt.Fprintf(w, "\nAnálise do examinador:\n%s\n", text)
	}
}
