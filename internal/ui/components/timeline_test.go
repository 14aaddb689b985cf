package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

func TestTimelineBrowser_SelectionFollowsCursor(t *testing.T) {
	b := NewTimelineBrowser(styles.New(styles.Dark), "")
	b.SetSize(60, 20)
	b.SetEntries([]string{"", "a", "ab"}, 2, true)
	assert.Equal(t, 2, b.Selected())

	b.Move(-5)
	assert.Equal(t, 0, b.Selected())
	b.Move(10)
	assert.Equal(t, 2, b.Selected())

	// Unknown cursor keeps the selection in range.
	b.SetEntries([]string{""}, 0, false)
	assert.Equal(t, 0, b.Selected())
}

func TestTimelineBrowser_View(t *testing.T) {
	b := NewTimelineBrowser(styles.New(styles.Dark), "")
	b.SetSize(60, 20)
	b.SetEntries([]string{"", "int x"}, 1, true)
	assert.Equal(t, "", b.View())

	b.Toggle()
	view := ansi.Strip(b.View())
	assert.Contains(t, view, "Timeline (2/2)")
	assert.Contains(t, view, "(empty)")
	assert.Contains(t, view, "int x")

	b.SetEntries([]string{"", "int x"}, 0, false)
	assert.Contains(t, ansi.Strip(b.View()), "Timeline (?/2)")
}

func TestTimelineBrowser_Scrolls(t *testing.T) {
	b := NewTimelineBrowser(styles.New(styles.Dark), "")
	b.SetSize(60, 7) // three rows
	entries := []string{"a", "b", "c", "d", "e", "f"}
	b.SetEntries(entries, 5, true)
	assert.Equal(t, 3, b.offset)

	b.Move(-5)
	assert.Equal(t, 0, b.offset)
}

func TestTimelineBrowser_SelectionSurvivesRefresh(t *testing.T) {
	b := NewTimelineBrowser(styles.New(styles.Dark), "")
	b.SetSize(60, 20)
	entries := []string{"", "a", "ab"}
	b.SetEntries(entries, 2, true)

	b.Move(-2)
	b.SetEntries(entries, 2, true)
	assert.Equal(t, 0, b.Selected())

	// Reopening jumps back to the cursor.
	b.Toggle()
	b.SetEntries(entries, 2, true)
	assert.Equal(t, 2, b.Selected())
}
