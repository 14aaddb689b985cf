// Package editorview is the Bubble Tea view that edits one document: the
// text area, suggestion popup, timeline browser, file prompts and dialogs.
package editorview

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/smartedit/internal/editor"
	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/storage/sqlite"
	"github.com/willibrandon/smartedit/internal/ui"
	"github.com/willibrandon/smartedit/internal/ui/components"
	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// DefaultDebounce is the typing pause before suggestions refresh.
const DefaultDebounce = 300 * time.Millisecond

// Options configures an EditorView.
type Options struct {
	Debounce    time.Duration
	Theme       string // "dark" or "light"
	SyntaxStyle string // chroma style for timeline previews; "" follows Theme
	InitialPath string // file opened on start, created on first save if missing

	Recent    *sqlite.RecentStore // optional
	Clipboard *ui.Clipboard       // optional
}

// EditorView edits a single document backed by an editor.Model.
type EditorView struct {
	model *editor.Model
	buf   textBuffer

	keys   ui.KeyMap
	styles styles.Styles

	viewport    viewport.Model
	suggestions *components.SuggestionList
	prompt      *components.PathPrompt
	dialog      *components.ConfirmDialog
	timeline    *components.TimelineBrowser
	statusBar   *components.StatusBar

	debounce time.Duration
	seq      int // bumped on every buffer change; stale suggestion ticks are dropped

	pending    ui.PendingAction // waiting behind an unsaved-changes prompt or a save
	saveTarget string           // path awaiting overwrite confirmation

	recent      *sqlite.RecentStore
	clipboard   *ui.Clipboard
	initialPath string

	width     int
	height    int
	lastTitle string
	quitting  bool
}

// New creates the view and its editing model. Options for the model, such
// as the vocabulary and undo limit, are passed through.
func New(opts Options, modelOpts ...editor.Option) *EditorView {
	st := styles.New(styles.PaletteFor(opts.Theme))

	debounce := opts.Debounce
	if debounce < 0 {
		debounce = 0
	}

	v := &EditorView{
		keys:        ui.DefaultKeyMap(),
		styles:      st,
		viewport:    viewport.New(0, 0),
		suggestions: components.NewSuggestionList(st),
		prompt:      components.NewPathPrompt(st),
		dialog:      components.NewConfirmDialog(st),
		timeline:    components.NewTimelineBrowser(st, styles.SyntaxStyleFor(opts.Theme, opts.SyntaxStyle)),
		statusBar:   components.NewStatusBar(st),
		debounce:    debounce,
		recent:      opts.Recent,
		clipboard:   opts.Clipboard,
		initialPath: opts.InitialPath,
	}

	// Replays, resets and applied suggestions rewrite the buffer from the
	// model side; mirror them into the text area.
	modelOpts = append(modelOpts, editor.WithBufferListener(v.buf.SetTextKeepCaret))
	v.model = editor.New(modelOpts...)
	v.refresh()
	return v
}

// Model returns the editing model.
func (v *EditorView) Model() *editor.Model {
	return v.model
}

// Init opens the initial file, if any.
func (v *EditorView) Init() tea.Cmd {
	if v.initialPath == "" {
		return v.titleCmd()
	}
	return tea.Batch(v.startWith(v.initialPath), v.titleCmd())
}

// SetSize sets the view dimensions.
func (v *EditorView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.statusBar.SetSize(width)
	v.dialog.SetSize(width, height)
	v.prompt.SetWidth(width)
	v.layout()
}

// Quitting reports whether the view asked the program to exit.
func (v *EditorView) Quitting() bool {
	return v.quitting
}

// Update handles messages and updates the view.
func (v *EditorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = v.handleKeyPress(msg)

	case ui.SuggestTickMsg:
		if msg.Seq == v.seq {
			v.refreshSuggestions()
		}

	case ui.FileOpenedMsg:
		cmd = v.handleOpened(msg)

	case ui.FileSavedMsg:
		cmd = v.handleSaved(msg)

	case ui.ClipboardMsg:
		if msg.Error != nil {
			logger.Warn("clipboard copy failed", "error", msg.Error)
			v.setError("Copy failed: " + msg.Error.Error())
		} else {
			v.setMessage("Copied " + plural(msg.Bytes, "byte") + " to clipboard")
		}

	case ui.StatusMsg:
		v.statusBar.SetMessage(msg.Text, msg.Error)

	default:
		if v.prompt.IsVisible() {
			cmd = v.prompt.Update(msg)
		}
	}

	v.refresh()
	return v, tea.Batch(cmd, v.titleCmd())
}

// titleCmd updates the terminal title when it changed.
func (v *EditorView) titleCmd() tea.Cmd {
	title := v.model.Title("")
	if title == v.lastTitle {
		return nil
	}
	v.lastTitle = title
	return tea.SetWindowTitle(title)
}

// refresh pushes model state into the components.
func (v *EditorView) refresh() {
	v.statusBar.SetStatus(v.model.Status())
	if v.timeline.IsVisible() {
		pos, ok := v.model.TimelineCursorOrdinal()
		v.timeline.SetEntries(v.model.TimelineEntries(), pos, ok)
	}
	v.layout()
}

func (v *EditorView) setMessage(msg string) {
	v.statusBar.SetMessage(msg, false)
}

func (v *EditorView) setError(msg string) {
	v.statusBar.SetMessage(msg, true)
}
