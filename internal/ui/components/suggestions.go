package components

import (
	"strings"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// SuggestionList is the popup of dictionary matches for the word under the
// caret.
type SuggestionList struct {
	items    []string
	prefix   string
	selected int
	styles   styles.Styles
}

// NewSuggestionList creates an empty, hidden list.
func NewSuggestionList(st styles.Styles) *SuggestionList {
	return &SuggestionList{styles: st}
}

// SetItems replaces the suggestions and resets the selection. prefix is the
// typed text the items complete.
func (l *SuggestionList) SetItems(items []string, prefix string) {
	l.items = items
	l.prefix = prefix
	l.selected = 0
}

// Clear hides the list.
func (l *SuggestionList) Clear() {
	l.items = nil
	l.prefix = ""
	l.selected = 0
}

// Visible reports whether there is anything to show.
func (l *SuggestionList) Visible() bool {
	return len(l.items) > 0
}

// Items returns the current suggestions.
func (l *SuggestionList) Items() []string {
	return l.items
}

// Move shifts the selection by delta, wrapping at both ends.
func (l *SuggestionList) Move(delta int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	l.selected = ((l.selected+delta)%n + n) % n
}

// Selected returns the highlighted suggestion.
func (l *SuggestionList) Selected() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[l.selected], true
}

// View renders the list, emphasising the part each item shares with the
// typed prefix.
func (l *SuggestionList) View() string {
	if len(l.items) == 0 {
		return ""
	}
	plen := len([]rune(l.prefix))

	lines := make([]string, len(l.items))
	for i, item := range l.items {
		if i == l.selected {
			lines[i] = l.styles.SuggestionActive.Render(item)
			continue
		}
		runes := []rune(item)
		n := plen
		if n > len(runes) {
			n = len(runes)
		}
		lines[i] = l.styles.SuggestionMatched.Render(string(runes[:n])) +
			l.styles.Suggestion.Render(string(runes[n:]))
	}
	return l.styles.Suggestions.Render(strings.Join(lines, "\n"))
}
