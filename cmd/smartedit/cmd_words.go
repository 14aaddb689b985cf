package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage user words",
		Long: `User words are stored in the smartedit database and added to the
dictionary every time the editor starts.`,
	}

	cmd.AddCommand(
		newWordsAddCmd(),
		newWordsRemoveCmd(),
		newWordsListCmd(),
	)
	return cmd
}

// withWords runs fn against the configured word store.
func withWords(cmd *cobra.Command, fn func(*sqlite.WordStore) error) error {
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

	return fn(sqlite.NewWordStore(db))
}

func newWordsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWords(cmd, func(store *sqlite.WordStore) error {
				out := cmd.OutOrStdout()
				for _, word := range args {
					added, err := store.Add(cmd.Context(), word)
					if err != nil {
						return err
					}
					if added {
						logger.Info("user word added", "word", word)
						fmt.Fprintf(out, "%s %s\n", successColor("added"), word)
					} else {
						fmt.Fprintf(out, "%s %s\n", dimColor("exists"), word)
					}
				}
				return nil
			})
		},
	}
}

func newWordsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <word>...",
		Aliases: []string{"rm"},
		Short:   "Remove words from the dictionary",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWords(cmd, func(store *sqlite.WordStore) error {
				out := cmd.OutOrStdout()
				for _, word := range args {
					removed, err := store.Remove(cmd.Context(), word)
					if err != nil {
						return err
					}
					if removed {
						logger.Info("user word removed", "word", word)
						fmt.Fprintf(out, "%s %s\n", successColor("removed"), word)
					} else {
						fmt.Fprintf(out, "%s %s\n", warnColor("missing"), word)
					}
				}
				return nil
			})
		},
	}
}

func newWordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List user words",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWords(cmd, func(store *sqlite.WordStore) error {
				words, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(words) == 0 {
					fmt.Fprintln(out, dimColor("no user words; add some with 'smartedit words add'"))
					return nil
				}
				fmt.Fprintln(out, headerColor(fmt.Sprintf("%d user words", len(words))))
				for _, w := range words {
					fmt.Fprintf(out, "  %-24s %s\n", w.Word, dimColor("added "+humanize.Time(w.AddedAt)))
				}
				return nil
			})
		},
	}
}
