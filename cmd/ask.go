package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask [pergunta]",
	Short: "Ask the tutor a question, or start a conversation when none is given",
	Example: `  jusmind ask "O que é usucapião extraordinária?"
  jusmind ask --mode socratic`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		mode, err := chat.ParseMode(modeFlag)
		if err != nil {
			return err
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

		conv := chat.New(chat.WithMode(mode), chat.WithMaxHistory(rt.cfg.ChatHistory))
		in := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())

		if len(args) > 0 {
			m, err := conv.Send(cmd.Context(), gen, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(in.out, m.Text)
			return nil
		}
		return converse(cmd.Context(), conv, gen, in)
	},
}

func init() {
	askCmd.Flags().StringP("mode", "m", "resolver", "Tutor mode: resolver or socratic")
}

// converse runs the interactive tutor loop until end of input or /sair.
func converse(ctx context.Context, conv *chat.Conversation, r chat.Replier, in *lineReader) error {
	out := in.out
	fmt.Fprintf(out, "%s\n\nComandos: /modo, /nova, /sair\n", conv.Messages()[0].Text)

	for {
		text, ok := in.line(fmt.Sprintf("\n[%s] você: ", conv.Mode().Label()))
		if !ok {
			return nil
		}

		switch text {
		case "/sair":
			return nil
		case "/nova":
			conv.Reset()
			fmt.Fprintln(out, conv.Messages()[0].Text)
			continue
		case "/modo":
			if conv.Mode() == chat.ModeResolver {
				conv.SetMode(chat.ModeSocratic)
			} else {
				conv.SetMode(chat.ModeResolver)
			}
			fmt.Fprintf(out, "Modo: %s\n", conv.Mode().Label())
			continue
		}

		m, err := conv.Send(ctx, r, text)
		if errors.Is(err, chat.ErrEmptyInput) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\njusmind: %s\n", m.Text)
	}
}
