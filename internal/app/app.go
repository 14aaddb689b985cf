// Package app holds the root Bubble Tea model: it wires configuration,
// storage and the dictionary into the editor view and owns window sizing
// and the help overlay.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/smartedit/internal/config"
	"github.com/willibrandon/smartedit/internal/dictionary"
	"github.com/willibrandon/smartedit/internal/editor"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
	"github.com/willibrandon/smartedit/internal/ui"
	"github.com/willibrandon/smartedit/internal/ui/components"
	"github.com/willibrandon/smartedit/internal/ui/styles"
	"github.com/willibrandon/smartedit/internal/ui/views/editorview"
)

// Options are the resources the application runs with.
type Options struct {
	Config      *config.Config
	Dictionary  *dictionary.Trie
	Store       *sqlite.DB // optional; enables recent files
	InitialPath string
}

// Model represents the main Bubbletea application model
type Model struct {
	// Configuration
	config *config.Config

	// UI state
	width  int
	height int

	// Keyboard bindings
	keys ui.KeyMap

	// UI components
	help   *components.HelpText
	editor *editorview.EditorView

	// Application state
	helpVisible bool
	ready       bool
}

// New creates a new application model
func New(opts Options) *Model {
	cfg := opts.Config

	viewOpts := editorview.Options{
		Debounce:    cfg.Suggest.Debounce,
		Theme:       cfg.UI.Theme,
		SyntaxStyle: cfg.UI.HighlightStyle,
		InitialPath: opts.InitialPath,
		Clipboard:   ui.NewClipboard(),
	}
	if opts.Store != nil {
		viewOpts.Recent = sqlite.NewRecentStore(opts.Store)
	}

	modelOpts := []editor.Option{
		editor.WithUndoLimit(cfg.Editor.UndoLimit),
		editor.WithMinPrefixLength(cfg.Suggest.MinPrefix),
		editor.WithCaseFolding(cfg.Suggest.FoldCase),
	}
	if opts.Dictionary != nil {
		modelOpts = append(modelOpts, editor.WithDictionary(opts.Dictionary))
	}

	keys := ui.DefaultKeyMap()
	st := styles.New(styles.PaletteFor(cfg.UI.Theme))

	return &Model{
		config: cfg,
		keys:   keys,
		help:   components.NewHelp(keys.FullHelp(), st),
		editor: editorview.New(viewOpts, modelOpts...),
	}
}

// Editor returns the editor view.
func (m Model) Editor() *editorview.EditorView {
	return m.editor
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.editor.SetSize(msg.Width, msg.Height)
		if !m.ready {
			m.ready = true
		}
		return m, nil

	case ui.ToggleHelpMsg:
		m.helpVisible = !m.helpVisible
		return m, nil

	case tea.KeyMsg:
		if m.helpVisible {
			return m.handleHelpKey(msg)
		}
	}

	_, cmd := m.editor.Update(msg)
	return m, cmd
}

// handleHelpKey processes keyboard input while the help overlay is open.
// Quit still reaches the editor so unsaved changes are guarded.
func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f1", "esc":
		m.helpVisible = false
		return m, nil
	}
	if msg.String() == "ctrl+q" || msg.String() == "ctrl+c" {
		m.helpVisible = false
		_, cmd := m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the application UI
func (m Model) View() string {
	if m.editor.Quitting() {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.helpVisible {
		return m.help.View()
	}
	return m.editor.View()
}
