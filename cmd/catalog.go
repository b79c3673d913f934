package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the subjects and the exam archive",
}

var catalogSubjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		out := cmd.OutOrStdout()

		found := catalog.SearchSubjects(search)
		if len(found) == 0 {
			fmt.Fprintf(out, "Nenhuma matéria encontrada para %q.\n", search)
			return nil
		}
		for _, s := range found {
			fmt.Fprintln(out, s)
		}
		return nil
	},
}

var catalogExamsCmd = &cobra.Command{
	Use:   "exams",
	Short: "List archived exams for the subjects matching --search",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		out := cmd.OutOrStdout()

		found := catalog.SearchSubjects(search)
		if len(found) == 0 {
			fmt.Fprintf(out, "Nenhuma matéria encontrada para %q.\n", search)
			return nil
		}

		fmt.Fprintf(out, "%-12s  %-10s  %-4s  %-24s  %s\n", "ID", "Banca", "Ano", "Período", "Matéria")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, subject := range found {
			for _, e := range catalog.ExamsFor(subject) {
				fmt.Fprintf(out, "%-12s  %-10s  %-4d  %-24s  %s\n",
					truncate(e.ID, 12), e.Institution, e.Year, truncate(e.Period, 24), e.Subject)
			}
		}
		fmt.Fprintln(out, "\nPratique com: jusmind quiz --topic <matéria> --context <banca>")
		return nil
	},
}

func init() {
	catalogSubjectsCmd.Flags().StringP("search", "s", "", "Filter subjects, ignoring accents and case")
	catalogExamsCmd.Flags().StringP("search", "s", "", "Filter subjects, ignoring accents and case")

	catalogCmd.AddCommand(catalogSubjectsCmd)
	catalogCmd.AddCommand(catalogExamsCmd)
}
