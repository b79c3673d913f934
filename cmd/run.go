package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/app"
	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/lessons"
	"github.com/jusmind/jusmind/internal/screens/home"
	"github.com/jusmind/jusmind/internal/stats"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := home.Services{
		Stats:       stats.NewTracker(rt.log),
		ChatOptions: []chat.Option{chat.WithMaxHistory(rt.cfg.ChatHistory)},
	}
	if rt.gen != nil {
		svc.Generator = rt.gen
		svc.Lessons = lessons.NewService(rt.gen)
	}

	return app.Run(app.Options{Services: svc, Log: rt.log})
}
