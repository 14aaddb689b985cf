package styles

import "github.com/charmbracelet/lipgloss"

var (
	// BorderNormal is the standard border for most UI elements
	BorderNormal = lipgloss.NormalBorder()

	// BorderRounded is used for the editor and popups
	BorderRounded = lipgloss.RoundedBorder()
)

// Styles holds every style the editor view renders with.
type Styles struct {
	Title        lipgloss.Style
	TitleDirty   lipgloss.Style
	Editor       lipgloss.Style
	EditorPrompt lipgloss.Style
	Cursor       lipgloss.Style
	LineNumber   lipgloss.Style

	Suggestions       lipgloss.Style
	Suggestion        lipgloss.Style
	SuggestionMatched lipgloss.Style
	SuggestionActive  lipgloss.Style

	StatusBar     lipgloss.Style
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style

	Timeline         lipgloss.Style
	TimelineEntry    lipgloss.Style
	TimelineSelected lipgloss.Style

	Dialog lipgloss.Style
	Help   lipgloss.Style
	Muted  lipgloss.Style
}

// New builds the styles for a palette.
func New(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 1),
		TitleDirty: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning),

		Editor: lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(p.Accent),
		EditorPrompt: lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(p.Border),
		Cursor: lipgloss.NewStyle().
			Reverse(true).
			Foreground(p.Cursor),
		LineNumber: lipgloss.NewStyle().
			Foreground(p.Muted),

		Suggestions: lipgloss.NewStyle().
			Border(BorderNormal).
			BorderForeground(p.Border).
			Padding(0, 1),
		Suggestion: lipgloss.NewStyle().
			Foreground(p.Text),
		SuggestionMatched: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		SuggestionActive: lipgloss.NewStyle().
			Foreground(p.SelectedFg).
			Background(p.SelectedBg),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.StatusBg).
			Padding(0, 1),
		StatusMessage: lipgloss.NewStyle().
			Foreground(p.Success),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Timeline: lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(p.Border).
			Padding(0, 1),
		TimelineEntry: lipgloss.NewStyle().
			Foreground(p.Muted),
		TimelineSelected: lipgloss.NewStyle().
			Foreground(p.SelectedFg).
			Background(p.SelectedBg),

		Dialog: lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(p.Warning).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}
