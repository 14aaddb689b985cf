package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/smartedit/internal/app"
	"github.com/willibrandon/smartedit/internal/config"
	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	debug      bool
	vocabFiles []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartedit [file]",
		Short: "Terminal text editor with word suggestions and an edit timeline",
		Long: `smartedit is a terminal text editor that suggests words from a dictionary
as you type and keeps two histories: undo/redo stacks and an append-only
timeline of every edit, navigable in both directions.

Commands:
  smartedit [file]                 Edit a file (created on first save)
  smartedit suggest <prefix>       Print dictionary suggestions
  smartedit words add|remove|list  Manage your own words
  smartedit recent                 List recently used files`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd.Context(), path)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/smartedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&vocabFiles, "vocab", nil, "extra vocabulary pack (YAML), repeatable")

	rootCmd.AddCommand(
		newSuggestCmd(),
		newWordsCmd(),
		newRecentCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and starts logging. The returned cleanup closes
// the log file.
func setup() (*config.Config, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, errors.New(app.FormatConfigError(err))
	}

	level := logger.LevelInfo
	if debug || cfg.Debug {
		level = logger.LevelDebug
	}
	logger.InitLogger(level, "")
	logger.Debug("configuration loaded", "storage", cfg.Storage.Path, "theme", cfg.UI.Theme)

	return cfg, logger.Close, nil
}

// openStore opens the SQLite database named by the configuration.
func openStore(cfg *config.Config) (*sqlite.DB, error) {
	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error("failed to open storage", "path", cfg.Storage.Path, "error", err)
		return nil, errors.New(app.FormatStorageError(err, cfg.Storage.Path))
	}
	return db, nil
}

// runEditor starts the terminal UI.
func runEditor(ctx context.Context, path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("smartedit needs an interactive terminal; use 'smartedit suggest' for scripting")
	}

	cfg, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	dict, err := app.BuildDictionary(ctx, cfg, vocabFiles, sqlite.NewWordStore(db))
	if err != nil {
		return errors.New(app.FormatVocabularyError(err))
	}

	model := app.New(app.Options{
		Config:      cfg,
		Dictionary:  dict,
		Store:       db,
		InitialPath: path,
	})

	logger.Info("starting editor", "version", version, "file", path, "words", dict.Len())
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smartedit %s\n", version)
		},
	}
}
