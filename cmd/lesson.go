package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/lessons"
)

var lessonCmd = &cobra.Command{
	Use:     "lesson",
	Short:   "Write a study lesson on a subject",
	Example: `  jusmind lesson --topic "Direito Administrativo"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
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

		out := cmd.OutOrStdout()
		l := lessons.NewService(gen).Generate(cmd.Context(), topic)
		fmt.Fprintln(out, l.Content)
		if l.KeyConcepts != "" {
			fmt.Fprintf(out, "\n%s\nConceitos-chave\n%s\n%s\n", strings.Repeat("─", 60), strings.Repeat("─", 60), l.KeyConcepts)
		}
		return nil
	},
}

func init() {
	lessonCmd.Flags().StringP("topic", "t", "", "Subject of the lesson")
}
