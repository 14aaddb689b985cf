package editor

import "github.com/willibrandon/smartedit/internal/dictionary"

// DefaultMinPrefixLength is the shortest word prefix that triggers a lookup.
const DefaultMinPrefixLength = 2

// Option configures a Model.
type Option func(*Model)

// WithDictionary uses an existing dictionary instead of an empty one.
func WithDictionary(d *dictionary.Trie) Option {
	return func(m *Model) {
		if d != nil {
			m.dict = d
		}
	}
}

// WithVocabulary inserts tokens into the model's dictionary.
func WithVocabulary(tokens []string) Option {
	return func(m *Model) {
		m.pendingVocab = append(m.pendingVocab, tokens...)
	}
}

// WithUndoLimit bounds the undo stack depth. Values <= 0 mean unbounded.
func WithUndoLimit(limit int) Option {
	return func(m *Model) {
		m.undoLimit = limit
	}
}

// WithMinPrefixLength sets the shortest prefix queried against the
// dictionary. Values below 1 are raised to 1.
func WithMinPrefixLength(n int) Option {
	return func(m *Model) {
		if n < 1 {
			n = 1
		}
		m.minPrefix = n
	}
}

// WithCaseFolding controls whether the prefix is lower-cased before lookup.
func WithCaseFolding(fold bool) Option {
	return func(m *Model) {
		m.foldCase = fold
	}
}

// WithBufferListener registers fn to be called whenever the model itself
// replaces the buffer (undo, redo, navigation, suggestions, resets).
func WithBufferListener(fn func(text string)) Option {
	return func(m *Model) {
		m.listener = fn
	}
}
