package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/question"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain an objective question with its answer key",
	Example: `  jusmind explain --question "Qual o prazo da contestação?" \
    --option "5 dias" --option "10 dias" --option "15 dias úteis" --option "30 dias" \
    --answer C`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("question")
		options, _ := cmd.Flags().GetStringArray("option")
		answer, _ := cmd.Flags().GetString("answer")
		topic, _ := cmd.Flags().GetString("topic")

		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("--question is required")
		}
		if len(options) < 2 {
			return fmt.Errorf("at least two --option values are required")
		}
		q := question.Question{
			Kind:    question.KindObjective,
			Topic:   topic,
			Text:    text,
			Options: options,
		}
		if answer != "" {
			idx := optionIndex(answer, len(options))
			if idx < 0 {
				return fmt.Errorf("--answer %q is not one of the option letters", answer)
			}
			q.CorrectAnswerIndex = question.IntPtr(idx)
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

		fmt.Fprintln(cmd.OutOrStdout(), gen.Explain(cmd.Context(), q))
		return nil
	},
}

func init() {
	explainCmd.Flags().StringP("question", "q", "", "Question statement")
	explainCmd.Flags().StringArrayP("option", "o", nil, "Answer option, in order (repeatable)")
	explainCmd.Flags().StringP("answer", "a", "", "Letter of the correct option")
	explainCmd.Flags().StringP("topic", "t", "", "Subject of the question")
}

