package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/willibrandon/smartedit/internal/app"
	"github.com/willibrandon/smartedit/internal/dictionary"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
)

func newSuggestCmd() *cobra.Command {
	var (
		showTree bool
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Print dictionary words starting with a prefix",
		Long: `Print the words the editor would suggest for a prefix, using the same
dictionary sources (builtin words, vocabulary packs, user words).

With --tree the matches are drawn as a tree where each word hangs under the
longest shorter match it extends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			dict, err := app.BuildDictionary(cmd.Context(), cfg, vocabFiles, sqlite.NewWordStore(db))
			if err != nil {
				return errors.New(app.FormatVocabularyError(err))
			}

			prefix := args[0]
			if cfg.Suggest.FoldCase {
				prefix = strings.ToLower(prefix)
			}

			out := cmd.OutOrStdout()
			if showTree {
				fmt.Fprint(out, suggestionTree(dict, prefix))
				return nil
			}

			var words []string
			if all {
				dict.Walk(prefix, func(token string) bool {
					words = append(words, token)
					return true
				})
			} else {
				words = dict.Suggest(prefix)
			}
			printSuggestions(out, prefix, words)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "draw matches as a tree")
	cmd.Flags().BoolVar(&all, "all", false, "list every match instead of the first "+fmt.Sprint(dictionary.MaxSuggestions))

	return cmd
}

// printSuggestions writes one word per line with the prefix highlighted.
func printSuggestions(w io.Writer, prefix string, words []string) {
	if len(words) == 0 {
		fmt.Fprintf(w, "%s\n", dimColor(fmt.Sprintf("no words start with %q", prefix)))
		return
	}
	n := len([]rune(prefix))
	for _, word := range words {
		runes := []rune(word)
		fmt.Fprintf(w, "%s%s\n", matchColor(string(runes[:n])), string(runes[n:]))
	}
}

// suggestionTree nests every match under the longest other match that is a
// prefix of it. The walk yields a word before its extensions, so a stack of
// open branches is enough.
func suggestionTree(dict *dictionary.Trie, prefix string) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%s (%d words)", prefix, countMatches(dict, prefix)))

	type open struct {
		word   string
		branch treeprint.Tree
	}
	var stack []open

	dict.Walk(prefix, func(token string) bool {
		for len(stack) > 0 && !strings.HasPrefix(token, stack[len(stack)-1].word) {
			stack = stack[:len(stack)-1]
		}
		parent := root
		if len(stack) > 0 {
			parent = stack[len(stack)-1].branch
		}
		stack = append(stack, open{word: token, branch: parent.AddBranch(token)})
		return true
	})

	return root.String()
}

func countMatches(dict *dictionary.Trie, prefix string) int {
	n := 0
	dict.Walk(prefix, func(string) bool {
		n++
		return true
	})
	return n
}
