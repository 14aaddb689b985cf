package app

import (
	"context"
	"fmt"

	"github.com/willibrandon/smartedit/internal/config"
	"github.com/willibrandon/smartedit/internal/dictionary"
	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
)

// LoadVocabulary gathers the dictionary tokens: the built-in list when
// enabled, every YAML pack from the config and from extra, and the user's
// saved words. words may be nil.
func LoadVocabulary(ctx context.Context, cfg *config.Config, extra []string, words *sqlite.WordStore) ([]string, error) {
	var tokens []string
	if cfg.Vocabulary.Builtin {
		tokens = append(tokens, dictionary.Builtin()...)
	}

	files := append(append([]string{}, cfg.Vocabulary.Files...), extra...)
	for _, path := range files {
		pack, err := dictionary.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded vocabulary pack", "name", pack.Name, "words", len(pack.Words))
		tokens = append(tokens, pack.Words...)
	}

	if words != nil {
		userWords, err := words.Words(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load user words: %w", err)
		}
		tokens = append(tokens, userWords...)
	}

	logger.Info("vocabulary loaded", "tokens", len(tokens), "packs", len(files))
	return tokens, nil
}

// BuildDictionary loads the vocabulary into a fresh trie.
func BuildDictionary(ctx context.Context, cfg *config.Config, extra []string, words *sqlite.WordStore) (*dictionary.Trie, error) {
	tokens, err := LoadVocabulary(ctx, cfg, extra, words)
	if err != nil {
		return nil, err
	}
	t := dictionary.NewTrie()
	t.InsertAll(tokens)
	return t, nil
}
