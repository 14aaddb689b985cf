package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

const helpIntro = "Suggestions appear after you pause typing once the word under the " +
	"caret has at least the configured number of letters. Undo and redo walk the " +
	"snapshot stacks; previous and next edit walk the timeline, which keeps every " +
	"edit ever made, including those undone, and never discards redo history."

// helpSections names the groups returned by KeyMap.FullHelp, in order.
var helpSections = []string{"History", "File", "Suggestions", "General"}

// HelpText represents the help component
type HelpText struct {
	width  int
	height int
	groups [][]key.Binding
	styles styles.Styles
}

// NewHelp creates a help component listing the given binding groups.
func NewHelp(groups [][]key.Binding, st styles.Styles) *HelpText {
	return &HelpText{groups: groups, styles: st}
}

// SetSize sets the size of the help component
func (h *HelpText) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// contentWidth is the wrap width for the intro paragraph.
func (h *HelpText) contentWidth() uint {
	w := 60
	if h.width > 0 && h.width-10 < w {
		w = h.width - 10
	}
	if w < 20 {
		w = 20
	}
	return uint(w)
}

// View renders the help screen
func (h *HelpText) View() string {
	var b strings.Builder

	b.WriteString(h.styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.WrapString(helpIntro, h.contentWidth()))
	b.WriteString("\n\n")

	for i, group := range h.groups {
		if i < len(helpSections) {
			b.WriteString(h.styles.SuggestionMatched.Render(helpSections[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			hk := binding.Help()
			b.WriteString(h.formatShortcut(hk.Key, hk.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(h.styles.Help.Render("Press f1 or esc to close"))

	dialog := h.styles.Dialog.Render(b.String())
	if h.width > 0 {
		dialog = lipgloss.Place(
			h.width,
			h.height,
			lipgloss.Center,
			lipgloss.Center,
			dialog,
		)
	}
	return dialog
}

// formatShortcut formats a keyboard shortcut with its description
func (h *HelpText) formatShortcut(keys, description string) string {
	keyStyle := h.styles.Suggestion.
		Bold(true).
		Width(18).
		Align(lipgloss.Left)

	return keyStyle.Render(keys) + h.styles.Muted.Render(description) + "\n"
}

// ShortHelp returns a brief help line for the bottom of the screen
func (h *HelpText) ShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		hk := binding.Help()
		parts = append(parts, hk.Key+" "+hk.Desc)
	}
	return h.styles.Help.Render(strings.Join(parts, " • "))
}
