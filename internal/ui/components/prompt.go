package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// PromptKind says what the entered path is for.
type PromptKind int

const (
	PromptOpen PromptKind = iota
	PromptSaveAs
)

// String returns the prompt label.
func (k PromptKind) String() string {
	if k == PromptSaveAs {
		return "Save as"
	}
	return "Open"
}

// PathPrompt is a single-line file path input.
type PathPrompt struct {
	input   textinput.Model
	kind    PromptKind
	visible bool
	width   int
	styles  styles.Styles
}

// NewPathPrompt creates a hidden prompt.
func NewPathPrompt(st styles.Styles) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.CharLimit = 4096
	ti.Prompt = "> "
	return &PathPrompt{input: ti, styles: st}
}

// Show opens the prompt pre-filled with initial.
func (p *PathPrompt) Show(kind PromptKind, initial string) tea.Cmd {
	p.kind = kind
	p.visible = true
	p.input.SetValue(initial)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Hide closes the prompt.
func (p *PathPrompt) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the prompt is open.
func (p *PathPrompt) IsVisible() bool {
	return p.visible
}

// Kind returns what the prompt is collecting a path for.
func (p *PathPrompt) Kind() PromptKind {
	return p.kind
}

// Value returns the entered path.
func (p *PathPrompt) Value() string {
	return p.input.Value()
}

// SetWidth sets the rendered width.
func (p *PathPrompt) SetWidth(width int) {
	p.width = width
	if width > 12 {
		p.input.Width = width - 12
	}
}

// Update forwards a message to the text input.
func (p *PathPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the prompt box.
func (p *PathPrompt) View() string {
	if !p.visible {
		return ""
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		p.styles.Title.Render(p.kind.String()),
		p.input.View(),
		p.styles.Help.Render("enter confirm • esc cancel"),
	)
	box := p.styles.EditorPrompt
	if p.width > 2 {
		box = box.Width(p.width - 2)
	}
	return box.Render(content)
}
