package ui

import (
	"time"

	"github.com/willibrandon/smartedit/internal/document"
)

// Suggestion messages

// SuggestTickMsg fires when the typing debounce elapses. Seq identifies the
// keystroke that scheduled it; a tick whose Seq is stale is dropped.
type SuggestTickMsg struct {
	Seq int
}

// File messages (from I/O commands to the editor view)

// FileOpenedMsg contains the result of reading a document.
type FileOpenedMsg struct {
	Doc   *document.Document
	Path  string // as requested, for error messages
	Error error
}

// FileSavedMsg contains the result of writing the buffer.
type FileSavedMsg struct {
	Path    string
	Size    int64
	SavedAt time.Time
	Error   error
	Then    PendingAction // action deferred behind an unsaved-changes prompt
}

// ClipboardMsg contains the result of copying the buffer.
type ClipboardMsg struct {
	Bytes int
	Error error
}

// UI state messages

// StatusMsg replaces the transient status line message.
type StatusMsg struct {
	Text  string
	Error bool
}

// ToggleHelpMsg asks the root model to show or hide the help overlay.
type ToggleHelpMsg struct{}

// PendingAction is a document action waiting on an unsaved-changes answer.
type PendingAction int

const (
	ActionNone PendingAction = iota
	ActionNew
	ActionOpen
	ActionQuit
)

// String returns the verb shown in the unsaved-changes prompt.
func (a PendingAction) String() string {
	switch a {
	case ActionNew:
		return "starting a new document"
	case ActionOpen:
		return "opening another file"
	case ActionQuit:
		return "quitting"
	default:
		return ""
	}
}
