package editor

import (
	"fmt"

	"github.com/willibrandon/smartedit/internal/dictionary"
	"github.com/willibrandon/smartedit/internal/history"
)

// Model is the editing model: a live buffer with undo/redo stacks, an edit
// timeline and a suggestion dictionary. It is not safe for concurrent use.
type Model struct {
	buffer   string
	undo     *history.Stack
	redo     *history.Stack
	timeline *history.Timeline
	dict     *dictionary.Trie

	mode     Mode
	dirty    bool
	identity string

	undoLimit    int
	minPrefix    int
	foldCase     bool
	listener     func(string)
	pendingVocab []string
}

// New creates a model with an empty buffer. The undo stack and the timeline
// are seeded with the empty text.
func New(opts ...Option) *Model {
	m := &Model{
		dict:      dictionary.NewTrie(),
		minPrefix: DefaultMinPrefixLength,
		foldCase:  true,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.undo = history.NewStack(m.undoLimit)
	m.redo = history.NewStack(0)
	m.timeline = history.NewTimeline()

	m.dict.InsertAll(m.pendingVocab)
	m.pendingVocab = nil

	m.seed("")
	return m
}

func (m *Model) seed(initial string) {
	m.undo.Clear()
	m.redo.Clear()
	m.timeline.Clear()
	m.undo.Push(initial)
	m.timeline.Record(initial)
	m.buffer = initial
	m.dirty = false
}

// requireNormal guards public mutators. Calling one on a zero Model or from
// inside a replay is a programming error.
func (m *Model) requireNormal(op string) {
	if m == nil || m.undo == nil {
		panic(fmt.Sprintf("editor: %s on uninitialized model", op))
	}
	if m.mode != ModeNormal {
		panic(fmt.Sprintf("editor: %s called while %s", op, m.mode))
	}
}

// replay runs fn with the model in mode, then notifies the listener with the
// resulting buffer while still suppressing recommits.
func (m *Model) replay(mode Mode, fn func()) {
	m.mode = mode
	defer func() { m.mode = ModeNormal }()

	fn()
	m.notify()
}

func (m *Model) notify() {
	if m.listener != nil {
		m.listener(m.buffer)
	}
}

// LoadVocabulary inserts tokens into the dictionary.
func (m *Model) LoadVocabulary(tokens []string) {
	m.requireNormal("LoadVocabulary")
	m.dict.InsertAll(tokens)
}

// Dictionary returns the suggestion dictionary.
func (m *Model) Dictionary() *dictionary.Trie {
	return m.dict
}

// OnBufferChanged reports that the buffer now holds text. It commits a
// genuine edit and returns true when the model is in ModeNormal and text
// differs from the undo top. Calls arriving during a replay are ignored.
func (m *Model) OnBufferChanged(text string) bool {
	if m == nil || m.undo == nil {
		panic("editor: OnBufferChanged on uninitialized model")
	}
	if m.mode.Replaying() {
		return false
	}

	m.buffer = text
	if text == m.undo.Peek() {
		return false
	}

	m.undo.Push(text)
	m.timeline.Record(text)
	m.redo.Clear()
	m.dirty = true
	return true
}

// Undo restores the previous snapshot. The seed snapshot is never popped;
// it returns false when there is nothing to undo.
func (m *Model) Undo() bool {
	m.requireNormal("Undo")
	if m.undo.Len() <= 1 {
		return false
	}

	m.replay(ModeReplayingUndo, func() {
		m.redo.Push(m.undo.Pop())
		m.buffer = m.undo.Peek()
		m.dirty = true
	})
	return true
}

// Redo reapplies the most recently undone snapshot. It returns false when
// the redo stack is empty.
func (m *Model) Redo() bool {
	m.requireNormal("Redo")
	if m.redo.IsEmpty() {
		return false
	}

	m.replay(ModeReplayingRedo, func() {
		text := m.redo.Pop()
		m.undo.Push(text)
		m.buffer = text
		m.dirty = true
	})
	return true
}

// NavigateHistory moves through the timeline relative to current, which
// should be the live buffer text. The reached snapshot becomes the buffer
// and is pushed onto the undo stack; the redo stack is left alone. It
// returns false at either end of the timeline or when the reached snapshot
// equals current.
func (m *Model) NavigateHistory(forward bool, current string) bool {
	m.requireNormal("NavigateHistory")

	var (
		text string
		ok   bool
	)
	if forward {
		text, ok = m.timeline.StepForward(current)
	} else {
		text, ok = m.timeline.StepBackward(current)
	}
	if !ok || text == current {
		return false
	}

	m.replay(ModeReplayingUndo, func() {
		m.buffer = text
		m.undo.Push(text)
		m.dirty = true
	})
	return true
}

// ResetDocument discards all history and starts over from initial, which
// is empty for a new document or the file contents after an open. The
// current file identity is cleared.
func (m *Model) ResetDocument(initial string) {
	m.ResetDocumentWithFile(initial, "")
}

// ResetDocumentWithFile resets like ResetDocument and records identity as
// the document's file.
func (m *Model) ResetDocumentWithFile(initial, identity string) {
	m.requireNormal("ResetDocument")
	m.seed(initial)
	m.identity = identity
	m.notify()
}

// MarkSaved records that the buffer was written to identity.
func (m *Model) MarkSaved(identity string) {
	m.requireNormal("MarkSaved")
	m.identity = identity
	m.dirty = false
}

// Text returns the live buffer.
func (m *Model) Text() string {
	return m.buffer
}

// Mode returns the current mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// UndoAvailableCount returns how many undo steps are possible.
func (m *Model) UndoAvailableCount() int {
	return max(0, m.undo.Len()-1)
}

// RedoAvailableCount returns how many redo steps are possible.
func (m *Model) RedoAvailableCount() int {
	return m.redo.Len()
}

// TimelineSize returns the number of recorded timeline entries.
func (m *Model) TimelineSize() int {
	return m.timeline.Len()
}

// TimelineCursorOrdinal returns the zero-based timeline cursor position.
// The second result is false when the position is unknown.
func (m *Model) TimelineCursorOrdinal() (int, bool) {
	return m.timeline.CursorOrdinal()
}

// TimelineEntries returns a copy of every timeline snapshot, oldest first.
func (m *Model) TimelineEntries() []string {
	return m.timeline.Entries()
}

// IsDirty reports whether the buffer has unsaved changes.
func (m *Model) IsDirty() bool {
	return m.dirty
}

// FileIdentity returns the current file, empty for an unsaved document.
func (m *Model) FileIdentity() string {
	return m.identity
}
