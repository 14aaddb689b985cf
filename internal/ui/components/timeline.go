package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/smartedit/internal/ui/highlight"
	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// TimelineBrowser lists every timeline snapshot, oldest first, with the
// timeline cursor marked.
type TimelineBrowser struct {
	entries  []string
	cursor   int
	known    bool
	selected int
	offset   int
	resync   bool // next SetEntries moves the selection to the cursor

	width       int
	height      int
	syntaxStyle string
	visible     bool
	styles      styles.Styles
}

// NewTimelineBrowser creates a hidden browser.
func NewTimelineBrowser(st styles.Styles, syntaxStyle string) *TimelineBrowser {
	return &TimelineBrowser{styles: st, syntaxStyle: syntaxStyle}
}

// SetSize sets the browser dimensions.
func (b *TimelineBrowser) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.ensureVisible()
}

// SetEntries refreshes the snapshots and the cursor. The selection jumps to
// the cursor when the cursor moves or the timeline grows, and otherwise
// stays where the user put it.
func (b *TimelineBrowser) SetEntries(entries []string, cursor int, known bool) {
	follow := known && (b.resync || !b.known || cursor != b.cursor || len(entries) != len(b.entries))
	b.entries = entries
	b.cursor = cursor
	b.known = known
	b.resync = false
	switch {
	case follow:
		b.selected = cursor
	case b.selected >= len(entries):
		b.selected = len(entries) - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
	b.ensureVisible()
}

// Toggle shows or hides the browser.
func (b *TimelineBrowser) Toggle() {
	b.visible = !b.visible
	b.resync = b.visible
}

// Hide hides the browser.
func (b *TimelineBrowser) Hide() {
	b.visible = false
}

// IsVisible returns whether the browser is shown.
func (b *TimelineBrowser) IsVisible() bool {
	return b.visible
}

// Selected returns the highlighted ordinal.
func (b *TimelineBrowser) Selected() int {
	return b.selected
}

// Move shifts the selection by delta, clamped to the entries.
func (b *TimelineBrowser) Move(delta int) {
	if len(b.entries) == 0 {
		return
	}
	b.selected += delta
	if b.selected < 0 {
		b.selected = 0
	}
	if b.selected >= len(b.entries) {
		b.selected = len(b.entries) - 1
	}
	b.ensureVisible()
}

// rows is the number of entry lines that fit.
func (b *TimelineBrowser) rows() int {
	// border, padding-free title line, footer
	r := b.height - 4
	if r < 1 {
		r = 1
	}
	return r
}

func (b *TimelineBrowser) ensureVisible() {
	rows := b.rows()
	if b.selected < b.offset {
		b.offset = b.selected
	}
	if b.selected >= b.offset+rows {
		b.offset = b.selected - rows + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// View renders the browser.
func (b *TimelineBrowser) View() string {
	if !b.visible {
		return ""
	}

	pos := "?"
	if b.known {
		pos = fmt.Sprintf("%d", b.cursor+1)
	}
	title := b.styles.Title.Render(fmt.Sprintf("Timeline (%s/%d)", pos, len(b.entries)))

	previewWidth := b.width - 14
	if previewWidth < 10 {
		previewWidth = 10
	}

	var lines []string
	end := b.offset + b.rows()
	if end > len(b.entries) {
		end = len(b.entries)
	}
	for i := b.offset; i < end; i++ {
		marker := "  "
		if b.known && i == b.cursor {
			marker = "▶ "
		}
		label := fmt.Sprintf("%s%4d ", marker, i+1)

		var preview string
		if b.entries[i] == "" {
			preview = b.styles.Muted.Render("(empty)")
		} else {
			preview = highlight.Preview(b.entries[i], b.syntaxStyle, previewWidth)
		}

		if i == b.selected {
			lines = append(lines, b.styles.TimelineSelected.Render(label)+preview)
		} else {
			lines = append(lines, b.styles.TimelineEntry.Render(label)+preview)
		}
	}

	footer := b.styles.Help.Render("↑/↓ select • enter jump • ctrl+t/esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), footer)

	box := b.styles.Timeline
	if b.width > 2 {
		box = box.Width(b.width - 2)
	}
	return box.Render(content)
}
