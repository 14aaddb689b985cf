package editorview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	gutterWidth = 5 // "%4d "
	tabWidth    = 4
)

// layout sizes the viewport around the open overlays and scrolls it so the
// caret line stays visible.
func (v *EditorView) layout() {
	if v.width <= 0 || v.height <= 0 {
		return
	}

	body := v.height - 2 // title and status lines
	if v.prompt.IsVisible() {
		body -= lipgloss.Height(v.prompt.View())
	}
	if v.timeline.IsVisible() {
		th := body / 2
		v.timeline.SetSize(v.width, th)
		body -= th
	}

	editorWidth := v.width
	if v.suggestions.Visible() {
		editorWidth -= lipgloss.Width(v.suggestions.View())
	}

	v.viewport.Width = max(editorWidth-v.styles.Editor.GetHorizontalFrameSize(), 1)
	v.viewport.Height = max(body-v.styles.Editor.GetVerticalFrameSize(), 1)
	v.viewport.SetContent(v.renderLines(v.viewport.Width))

	line, _ := v.buf.lineCol()
	switch {
	case line < v.viewport.YOffset:
		v.viewport.SetYOffset(line)
	case line >= v.viewport.YOffset+v.viewport.Height:
		v.viewport.SetYOffset(line - v.viewport.Height + 1)
	}
}

// renderLines draws the buffer with a line-number gutter and the caret.
// Lines wider than the view are cut; the caret line scrolls horizontally
// so the caret stays on screen.
func (v *EditorView) renderLines(width int) string {
	textWidth := max(width-gutterWidth, 1)
	caretLine, caretCol := v.buf.lineCol()

	lines := v.buf.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		gutter := v.styles.LineNumber.Render(fmt.Sprintf("%4d ", i+1))
		if i != caretLine {
			out[i] = gutter + runewidth.Truncate(expandTabs(line), textWidth, "…")
			continue
		}

		runes := []rune(line)
		before := expandTabs(string(runes[:caretCol]))
		at, after := " ", ""
		if caretCol < len(runes) {
			at = expandTabs(string(runes[caretCol]))
			after = expandTabs(string(runes[caretCol+1:]))
			if r, _ := firstRune(at); r == ' ' && len(at) > 1 {
				// A tab: the caret sits on its first cell.
				after = at[1:] + after
				at = " "
			}
		}

		// Scroll so the caret cell fits.
		if w := runewidth.StringWidth(before) + runewidth.StringWidth(at); w > textWidth {
			before = runewidth.TruncateLeft(before, w-textWidth, "")
		}
		rest := textWidth - runewidth.StringWidth(before) - runewidth.StringWidth(at)
		after = runewidth.Truncate(after, max(rest, 0), "")

		out[i] = gutter + before + v.styles.Cursor.Render(at) + after
	}
	return strings.Join(out, "\n")
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// View renders the editor screen.
func (v *EditorView) View() string {
	if v.quitting {
		return ""
	}
	if v.dialog.IsVisible() {
		return v.dialog.View()
	}

	title := v.styles.Title.Render(v.model.Title(""))
	if v.model.IsDirty() {
		title = v.styles.Title.Inherit(v.styles.TitleDirty).Render(v.model.Title(""))
	}
	hint := v.styles.Help.Render("f1 help")
	if gap := v.width - lipgloss.Width(title) - lipgloss.Width(hint); gap > 0 {
		title += strings.Repeat(" ", gap) + hint
	}

	editorBox := v.styles.Editor.Width(v.viewport.Width).Render(v.viewport.View())
	main := editorBox
	if v.suggestions.Visible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, editorBox, v.suggestions.View())
	}

	parts := []string{title, main}
	if v.timeline.IsVisible() {
		parts = append(parts, v.timeline.View())
	}
	if v.prompt.IsVisible() {
		parts = append(parts, v.prompt.View())
	}
	parts = append(parts, v.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
