package editor

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r continues the word being typed.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// clampCaret limits caret to [0, n].
func clampCaret(caret, n int) int {
	return min(max(caret, 0), n)
}

// TokenStart returns the rune index where the word ending at caret begins.
// It equals caret when the rune before caret is not a letter or digit.
func TokenStart(runes []rune, caret int) int {
	caret = clampCaret(caret, len(runes))
	start := caret
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	return start
}

// CurrentPrefix returns the word fragment ending at caret.
func CurrentPrefix(text string, caret int) string {
	runes := []rune(text)
	caret = clampCaret(caret, len(runes))
	return string(runes[TokenStart(runes, caret):caret])
}

// QuerySuggestions returns dictionary words completing the word that ends
// at caret in text. Prefixes shorter than the minimum length yield no
// suggestions. The model is not modified and the result is a fresh slice.
func (m *Model) QuerySuggestions(caret int, text string) []string {
	runes := []rune(text)
	caret = clampCaret(caret, len(runes))
	start := TokenStart(runes, caret)

	if caret-start < m.minPrefix {
		return []string{}
	}

	prefix := string(runes[start:caret])
	if m.foldCase {
		prefix = strings.ToLower(prefix)
	}
	return m.dict.Suggest(prefix)
}

// ApplySuggestion replaces the word ending at caret with word and commits
// the result as a genuine edit. It returns the new text and the caret
// placed after the inserted word. When there is no word before caret
// nothing happens and ok is false.
func (m *Model) ApplySuggestion(word string, caret int, text string) (newText string, newCaret int, ok bool) {
	m.requireNormal("ApplySuggestion")

	runes := []rune(text)
	caret = clampCaret(caret, len(runes))
	start := TokenStart(runes, caret)
	if start >= caret {
		return text, caret, false
	}

	var sb strings.Builder
	sb.WriteString(string(runes[:start]))
	sb.WriteString(word)
	sb.WriteString(string(runes[caret:]))
	newText = sb.String()
	newCaret = start + len([]rune(word))

	m.OnBufferChanged(newText)
	m.notify()
	return newText, newCaret, true
}
