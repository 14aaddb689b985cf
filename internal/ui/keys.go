package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the editor
type KeyMap struct {
	// History
	Undo         key.Binding
	Redo         key.Binding
	TimelinePrev key.Binding
	TimelineNext key.Binding
	Timeline     key.Binding

	// File
	New    key.Binding
	Open   key.Binding
	Save   key.Binding
	SaveAs key.Binding

	// Suggestions
	Accept      key.Binding
	SuggestUp   key.Binding
	SuggestDown key.Binding
	Dismiss     key.Binding

	// General
	Copy key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		TimelinePrev: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "previous edit"),
		),
		TimelineNext: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "next edit"),
		),
		Timeline: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "timeline"),
		),

		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		// Terminals report ctrl+alt+s with the alt modifier first.
		SaveAs: key.NewBinding(
			key.WithKeys("alt+ctrl+s", "f12"),
			key.WithHelp("ctrl+alt+s/f12", "save as"),
		),

		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		SuggestUp: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "previous suggestion"),
		),
		SuggestDown: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "next suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),

		Copy: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "copy buffer"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp returns a quick help view for the key bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Save, k.Help, k.Quit}
}

// FullHelp returns the full help view for all key bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Undo, k.Redo, k.TimelinePrev, k.TimelineNext, k.Timeline},
		{k.New, k.Open, k.Save, k.SaveAs},
		{k.Accept, k.SuggestUp, k.SuggestDown, k.Dismiss},
		{k.Copy, k.Help, k.Quit},
	}
}
