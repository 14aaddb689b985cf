package editorview

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/willibrandon/smartedit/internal/document"
	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
	"github.com/willibrandon/smartedit/internal/ui"
	"github.com/willibrandon/smartedit/internal/ui/components"
)

// recentTimeout bounds the recent-files bookkeeping done after file I/O.
const recentTimeout = 2 * time.Second

// request runs a document action, asking about unsaved changes first.
func (v *EditorView) request(action ui.PendingAction) tea.Cmd {
	if v.model.IsDirty() {
		v.pending = action
		v.dialog.Show(components.DialogUnsaved, v.model.FileName(), action.String())
		return nil
	}
	return v.perform(action)
}

// perform runs a document action without asking.
func (v *EditorView) perform(action ui.PendingAction) tea.Cmd {
	v.pending = ui.ActionNone
	v.suggestions.Clear()

	switch action {
	case ui.ActionNew:
		v.model.ResetDocument("")
		v.buf.setCaret(0)
		v.setMessage("New document")
		logger.Debug("new document")
	case ui.ActionOpen:
		return v.prompt.Show(components.PromptOpen, v.promptDir())
	case ui.ActionQuit:
		v.quitting = true
		logger.Info("quit")
		return tea.Quit
	}
	return nil
}

// promptDir pre-fills the open prompt with the current file's directory.
func (v *EditorView) promptDir() string {
	if id := v.model.FileIdentity(); id != "" {
		return filepath.Dir(id) + string(filepath.Separator)
	}
	return ""
}

// save writes the buffer to the current file, or asks for a path when the
// document has none. then runs after a successful write.
func (v *EditorView) save(then ui.PendingAction) tea.Cmd {
	if v.model.FileIdentity() == "" {
		v.pending = then
		return v.prompt.Show(components.PromptSaveAs, "")
	}
	return v.writeFile(v.model.FileIdentity(), then)
}

// handleDialogKey answers the open confirmation dialog.
func (v *EditorView) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	answer := v.dialog.Answer(msg.String())
	if answer == components.AnswerNone {
		return nil
	}
	v.dialog.Hide()

	if v.dialog.GetType() == components.DialogOverwrite {
		target := v.saveTarget
		v.saveTarget = ""
		if answer == components.AnswerYes {
			return v.writeFile(target, v.pending)
		}
		v.pending = ui.ActionNone
		v.setMessage("Save cancelled")
		return nil
	}

	action := v.pending
	switch answer {
	case components.AnswerYes:
		return v.save(action)
	case components.AnswerNo:
		return v.perform(action)
	default:
		v.pending = ui.ActionNone
		return nil
	}
}

// handlePromptKey drives the path prompt.
func (v *EditorView) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.prompt.Hide()
		v.pending = ui.ActionNone
		return nil
	case "enter":
		v.prompt.Hide()
		path := strings.TrimSpace(v.prompt.Value())
		if v.prompt.Kind() == components.PromptOpen {
			return openFile(path, v.recent)
		}
		return v.saveAs(path)
	}
	return v.prompt.Update(msg)
}

// saveAs resolves the chosen path and confirms before replacing another file.
func (v *EditorView) saveAs(path string) tea.Cmd {
	resolved, err := document.ResolveSavePath(path)
	if err != nil {
		v.pending = ui.ActionNone
		v.setError(ui.FormatFileError("Save", path, err))
		return nil
	}
	if document.Exists(resolved) && resolved != v.model.FileIdentity() {
		v.saveTarget = resolved
		v.dialog.Show(components.DialogOverwrite, resolved, "")
		return nil
	}
	return v.writeFile(resolved, v.pending)
}

// writeFile saves a snapshot of the buffer in the background.
func (v *EditorView) writeFile(path string, then ui.PendingAction) tea.Cmd {
	v.pending = ui.ActionNone
	text := v.model.Text()
	recent := v.recent
	return func() tea.Msg {
		final, size, err := document.Save(path, text)
		if err == nil {
			touchRecent(recent, final, size)
		}
		return ui.FileSavedMsg{Path: final, Size: size, SavedAt: time.Now(), Error: err, Then: then}
	}
}

// openFile reads a document in the background.
func openFile(path string, recent *sqlite.RecentStore) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Open(path)
		if err == nil {
			touchRecent(recent, doc.Path, doc.Size)
		}
		return ui.FileOpenedMsg{Doc: doc, Path: path, Error: err}
	}
}

func touchRecent(recent *sqlite.RecentStore, path string, size int64) {
	if recent == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recentTimeout)
	defer cancel()
	if err := recent.Touch(ctx, path, size); err != nil {
		logger.Warn("failed to record recent file", "path", path, "error", err)
	}
}

// startWith opens path on start. A path that does not exist yet becomes the
// identity of an empty document, created on first save.
func (v *EditorView) startWith(path string) tea.Cmd {
	if document.Exists(path) {
		return openFile(path, v.recent)
	}
	resolved, err := document.ResolveSavePath(path)
	if err != nil {
		v.setError(ui.FormatFileError("Open", path, err))
		return nil
	}
	v.model.ResetDocumentWithFile("", resolved)
	v.setMessage("New file " + filepath.Base(resolved))
	return nil
}

func (v *EditorView) handleOpened(msg ui.FileOpenedMsg) tea.Cmd {
	if msg.Error != nil {
		logger.Warn("open failed", "path", msg.Path, "error", msg.Error)
		v.setError(ui.FormatFileError("Open", msg.Path, msg.Error))
		return nil
	}
	v.suggestions.Clear()
	v.model.ResetDocumentWithFile(msg.Doc.Text, msg.Doc.Path)
	v.buf.setCaret(0)
	v.setMessage(fmt.Sprintf("Opened %s (%s)", msg.Doc.Name, humanize.Bytes(uint64(msg.Doc.Size))))
	logger.Info("opened file", "path", msg.Doc.Path, "bytes", msg.Doc.Size)
	return nil
}

func (v *EditorView) handleSaved(msg ui.FileSavedMsg) tea.Cmd {
	if msg.Error != nil {
		logger.Error("save failed", "path", msg.Path, "error", msg.Error)
		v.setError(ui.FormatFileError("Save", msg.Path, msg.Error))
		return nil
	}
	v.model.MarkSaved(msg.Path)
	v.setMessage(fmt.Sprintf("Saved %s (%s)", filepath.Base(msg.Path), humanize.Bytes(uint64(msg.Size))))
	logger.Info("saved file", "path", msg.Path, "bytes", msg.Size)
	if msg.Then != ui.ActionNone {
		return v.perform(msg.Then)
	}
	return nil
}

// copyBuffer copies the whole buffer to the system clipboard.
func (v *EditorView) copyBuffer() tea.Cmd {
	if v.clipboard == nil || !v.clipboard.IsAvailable() {
		reason := "no clipboard"
		if v.clipboard != nil {
			reason = v.clipboard.Error()
		}
		v.setError("Copy failed: " + reason)
		return nil
	}
	text := v.model.Text()
	cb := v.clipboard
	return func() tea.Msg {
		return ui.ClipboardMsg{Bytes: len(text), Error: cb.Write(text)}
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
