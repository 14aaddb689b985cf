package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// DialogType represents the type of confirmation dialog.
type DialogType int

const (
	// DialogUnsaved asks whether to save before discarding the buffer.
	DialogUnsaved DialogType = iota
	// DialogOverwrite asks whether to replace an existing file.
	DialogOverwrite
)

// DialogAnswer is the user's response to a confirmation dialog.
type DialogAnswer int

const (
	AnswerNone DialogAnswer = iota
	AnswerYes
	AnswerNo
	AnswerCancel
)

// ConfirmDialog represents a confirmation dialog for destructive actions.
type ConfirmDialog struct {
	width      int
	height     int
	dialogType DialogType
	subject    string // file name for the unsaved prompt, target path for overwrite
	action     string
	visible    bool
	styles     styles.Styles
}

// NewConfirmDialog creates a new confirmation dialog.
func NewConfirmDialog(st styles.Styles) *ConfirmDialog {
	return &ConfirmDialog{styles: st}
}

// Show displays the dialog. action describes what happens after the answer,
// for example "quitting".
func (d *ConfirmDialog) Show(dialogType DialogType, subject, action string) {
	d.dialogType = dialogType
	d.subject = subject
	d.action = action
	d.visible = true
}

// Hide hides the dialog.
func (d *ConfirmDialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// GetType returns the dialog type.
func (d *ConfirmDialog) GetType() DialogType {
	return d.dialogType
}

// Subject returns the file the dialog is asking about.
func (d *ConfirmDialog) Subject() string {
	return d.subject
}

// SetSize sets the dialog dimensions.
func (d *ConfirmDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Answer maps a key press to an answer. The overwrite dialog has no cancel
// distinct from "no".
func (d *ConfirmDialog) Answer(key string) DialogAnswer {
	switch key {
	case "y", "Y":
		return AnswerYes
	case "n", "N":
		return AnswerNo
	case "esc":
		if d.dialogType == DialogOverwrite {
			return AnswerNo
		}
		return AnswerCancel
	}
	return AnswerNone
}

// View renders the confirmation dialog.
func (d *ConfirmDialog) View() string {
	if !d.visible {
		return ""
	}

	var title, body, prompt string
	if d.dialogType == DialogUnsaved {
		name := d.subject
		if name == "" {
			name = "Untitled"
		}
		title = "Unsaved Changes"
		body = fmt.Sprintf("Save changes to %s before %s?", name, d.action)
		prompt = "[y] Save  [n] Discard  [esc] Cancel"
	} else {
		title = "File Exists"
		body = fmt.Sprintf("%s already exists.\nReplace it?", filepath.Base(d.subject))
		prompt = "[y] Replace  [n] Cancel"
	}

	titleStyle := d.styles.TitleDirty.MarginBottom(1)
	promptStyle := lipgloss.NewStyle().
		MarginTop(1).
		Bold(true)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		body,
		promptStyle.Render(prompt),
	)

	dialog := d.styles.Dialog.Width(56).Render(content)
	if d.width > 0 && d.height > 0 {
		dialog = lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
