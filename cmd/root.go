package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jusmind/jusmind/internal/config"
	"github.com/jusmind/jusmind/internal/generation"
	"github.com/jusmind/jusmind/internal/llm"
	"github.com/jusmind/jusmind/internal/logger"
	"github.com/jusmind/jusmind/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jusmind",
	Short: "AI study companion for Brazilian law exams",
	Long: "JusMind generates practice questions, lessons and tutoring for OAB,\n" +
		"concursos públicos and law school exams, right in the terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the request journal (overrides JUSMIND_DB)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file instead of .env")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime is what a command needs: configuration, a logger, the optional
// request journal and the optional generation client.
type runtime struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *store.Store

	// gen is nil when no provider is configured.
	gen *generation.Client

	logFile io.Closer
}

// setup loads configuration and builds the shared dependencies. The TUI
// owns the terminal, so interactive runs log to a file; line commands log
// to stderr.
func setup(cmd *cobra.Command, interactive bool) (*runtime, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	rt := &runtime{cfg: cfg}

	var w io.Writer = os.Stderr
	if interactive {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		w, rt.logFile = f, f
	}
	rt.log = logger.Setup(cfg.LogLevel, cfg.LogFormat, w)

	var journal store.EventRepo
	if !cfg.NoJournal {
		st, err := openStore(cmd, cfg)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.store = st
		journal = st.EventRepo()
	}

	pc, err := cfg.ProviderConfig()
	switch {
	case errors.Is(err, config.ErrNoProvider):
		rt.log.Warn().Msg("no generative provider configured")
		return rt, nil
	case err != nil:
		rt.Close()
		return nil, err
	}

	provider, err := llm.NewProvider(cmd.Context(), pc, journal, rt.log)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.log.Info().
		Str("provider", pc.Provider).
		Str("model", provider.ModelID()).
		Bool("discovered", cfg.Discovered).
		Msg("generative provider ready")
	rt.gen = generation.New(provider, generation.DefaultConfig(), rt.log)
	return rt, nil
}

// generator returns the generation client or config.ErrNoProvider.
func (r *runtime) generator() (*generation.Client, error) {
	if r.gen == nil {
		return nil, config.ErrNoProvider
	}
	return r.gen, nil
}

func (r *runtime) Close() {
	if r.store != nil {
		r.store.Close()
	}
	if r.logFile != nil {
		r.logFile.Close()
	}
}

// resolveDBPath returns the journal path using --db (highest priority),
// then JUSMIND_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" && cfg != nil {
		p = cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
