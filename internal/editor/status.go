package editor

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// DefaultTitle is the application name shown in titles.
const DefaultTitle = "Smart Text Editor"

// Status is a snapshot of the counters shown in the status bar.
type Status struct {
	Position      int  // one-based timeline position, valid when Known
	Known         bool // false when the timeline cursor position is unknown
	TimelineSize  int
	UndoAvailable int
	RedoAvailable int
	Dirty         bool
}

// Status returns the current counters.
func (m *Model) Status() Status {
	pos, ok := m.TimelineCursorOrdinal()
	return Status{
		Position:      pos + 1,
		Known:         ok,
		TimelineSize:  m.TimelineSize(),
		UndoAvailable: m.UndoAvailableCount(),
		RedoAvailable: m.RedoAvailableCount(),
		Dirty:         m.IsDirty(),
	}
}

// String renders the status bar text, using "?" for an unknown position.
func (s Status) String() string {
	pos := "?"
	if s.Known {
		pos = strconv.Itoa(s.Position)
	}
	return fmt.Sprintf("Edits: %s/%d | Undo: %d | Redo: %d", pos, s.TimelineSize, s.UndoAvailable, s.RedoAvailable)
}

// FileName returns the base name of the current file, or "".
func (m *Model) FileName() string {
	if m.identity == "" {
		return ""
	}
	return filepath.Base(m.identity)
}

// Title renders a window title: app name, file name and a dirty marker.
func (m *Model) Title(app string) string {
	if app == "" {
		app = DefaultTitle
	}
	title := app
	if name := m.FileName(); name != "" {
		title += " - " + name
	}
	if m.dirty {
		title += " *"
	}
	return title
}
