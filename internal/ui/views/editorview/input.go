package editorview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/smartedit/internal/editor"
	"github.com/willibrandon/smartedit/internal/ui"
	"github.com/willibrandon/smartedit/internal/ui/components"
)

// pageLines is how far pgup and pgdown move when the view has no height yet.
const pageLines = 10

// handleKeyPress routes a key to the topmost open overlay, then to the
// editor bindings, then to text editing.
func (v *EditorView) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case v.dialog.IsVisible():
		return v.handleDialogKey(msg)
	case v.prompt.IsVisible():
		return v.handlePromptKey(msg)
	case v.timeline.IsVisible():
		if cmd, handled := v.handleTimelineKey(msg); handled {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v.request(ui.ActionQuit)
	case key.Matches(msg, v.keys.New):
		return v.request(ui.ActionNew)
	case key.Matches(msg, v.keys.Open):
		return v.request(ui.ActionOpen)
	case key.Matches(msg, v.keys.Save):
		return v.save(ui.ActionNone)
	case key.Matches(msg, v.keys.SaveAs):
		return v.prompt.Show(components.PromptSaveAs, v.model.FileIdentity())
	case key.Matches(msg, v.keys.Help):
		return func() tea.Msg { return ui.ToggleHelpMsg{} }

	case key.Matches(msg, v.keys.Undo):
		v.undo()
		return nil
	case key.Matches(msg, v.keys.Redo):
		v.redo()
		return nil
	case key.Matches(msg, v.keys.TimelinePrev):
		v.navigate(false)
		return nil
	case key.Matches(msg, v.keys.TimelineNext):
		v.navigate(true)
		return nil
	case key.Matches(msg, v.keys.Timeline):
		v.timeline.Toggle()
		return nil
	case key.Matches(msg, v.keys.Copy):
		return v.copyBuffer()

	case key.Matches(msg, v.keys.SuggestUp):
		v.suggestions.Move(-1)
		return nil
	case key.Matches(msg, v.keys.SuggestDown):
		v.suggestions.Move(1)
		return nil
	case key.Matches(msg, v.keys.Dismiss):
		v.suggestions.Clear()
		return nil
	case key.Matches(msg, v.keys.Accept):
		if v.suggestions.Visible() {
			v.acceptSuggestion()
			return nil
		}
		return v.edit(v.buf.Insert([]rune{'\t'}))
	}

	return v.handleEditKey(msg)
}

// handleEditKey applies caret movement and text edits.
func (v *EditorView) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes:
		// Bracketed paste arrives here too, as one message.
		return v.edit(v.buf.Insert(msg.Runes))
	case tea.KeySpace:
		return v.edit(v.buf.Insert([]rune{' '}))
	case tea.KeyEnter:
		return v.edit(v.buf.Insert([]rune{'\n'}))
	case tea.KeyBackspace:
		return v.edit(v.buf.Backspace())
	case tea.KeyDelete:
		return v.edit(v.buf.Delete())

	case tea.KeyLeft:
		v.buf.Left()
	case tea.KeyRight:
		v.buf.Right()
	case tea.KeyUp:
		v.buf.Up()
	case tea.KeyDown:
		v.buf.Down()
	case tea.KeyHome:
		v.buf.Home()
	case tea.KeyEnd:
		v.buf.End()
	case tea.KeyPgUp:
		for i := 0; i < v.pageSize(); i++ {
			v.buf.Up()
		}
	case tea.KeyPgDown:
		for i := 0; i < v.pageSize(); i++ {
			v.buf.Down()
		}
	default:
		return nil
	}

	// The word under the caret changed; stale suggestions would complete the
	// wrong word.
	v.suggestions.Clear()
	return nil
}

func (v *EditorView) pageSize() int {
	if v.viewport.Height > 1 {
		return v.viewport.Height - 1
	}
	return pageLines
}

// edit reports a changed buffer to the model and schedules a suggestion
// refresh once typing pauses.
func (v *EditorView) edit(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	v.model.OnBufferChanged(v.buf.String())
	v.suggestions.Clear()

	v.seq++
	if v.debounce == 0 {
		v.refreshSuggestions()
		return nil
	}
	seq := v.seq
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return ui.SuggestTickMsg{Seq: seq}
	})
}

// refreshSuggestions queries the model for the word under the caret.
func (v *EditorView) refreshSuggestions() {
	text, caret := v.buf.String(), v.buf.Caret()
	items := v.model.QuerySuggestions(caret, text)
	if len(items) == 0 {
		v.suggestions.Clear()
		return
	}
	v.suggestions.SetItems(items, editor.CurrentPrefix(text, caret))
}

func (v *EditorView) acceptSuggestion() {
	word, ok := v.suggestions.Selected()
	v.suggestions.Clear()
	if !ok {
		return
	}
	_, caret, ok := v.model.ApplySuggestion(word, v.buf.Caret(), v.buf.String())
	if ok {
		v.buf.setCaret(caret)
	}
}

func (v *EditorView) undo() {
	v.suggestions.Clear()
	if !v.model.Undo() {
		v.setMessage("Nothing to undo")
	}
}

func (v *EditorView) redo() {
	v.suggestions.Clear()
	if !v.model.Redo() {
		v.setMessage("Nothing to redo")
	}
}

func (v *EditorView) navigate(forward bool) {
	v.suggestions.Clear()
	if v.model.NavigateHistory(forward, v.buf.String()) {
		return
	}
	if forward {
		v.setMessage("No later edit")
	} else {
		v.setMessage("No earlier edit")
	}
}

// handleTimelineKey handles keys owned by the open timeline browser. Keys it
// does not own fall through to the editor.
func (v *EditorView) handleTimelineKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up":
		v.timeline.Move(-1)
	case "down":
		v.timeline.Move(1)
	case "pgup":
		v.timeline.Move(-v.pageSize())
	case "pgdown":
		v.timeline.Move(v.pageSize())
	case "enter":
		v.jumpTo(v.timeline.Selected())
	case "esc":
		v.timeline.Hide()
	default:
		return nil, false
	}
	return nil, true
}

// jumpTo steps the timeline one entry at a time until the cursor reaches
// target. Each step is a navigation, so undo records every stop on the way.
func (v *EditorView) jumpTo(target int) {
	v.suggestions.Clear()
	limit := 2 * v.model.TimelineSize()
	for i := 0; i < limit; i++ {
		pos, known := v.model.TimelineCursorOrdinal()
		if known && pos == target {
			return
		}
		forward := known && pos < target
		moved := v.model.NavigateHistory(forward, v.buf.String())
		after, afterKnown := v.model.TimelineCursorOrdinal()
		if !moved && afterKnown == known && after == pos {
			return
		}
	}
}
