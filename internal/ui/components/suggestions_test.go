package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/willibrandon/smartedit/internal/ui/styles"
)

func TestSuggestionList_MoveWraps(t *testing.T) {
	l := NewSuggestionList(styles.New(styles.Dark))
	l.SetItems([]string{"class", "classloader", "clone"}, "cl")

	got, ok := l.Selected()
	assert.True(t, ok)
	assert.Equal(t, "class", got)

	l.Move(-1)
	got, _ = l.Selected()
	assert.Equal(t, "clone", got)

	l.Move(2)
	got, _ = l.Selected()
	assert.Equal(t, "classloader", got)
}

func TestSuggestionList_Empty(t *testing.T) {
	l := NewSuggestionList(styles.New(styles.Dark))
	l.Move(1)

	_, ok := l.Selected()
	assert.False(t, ok)
	assert.False(t, l.Visible())
	assert.Equal(t, "", l.View())
}

func TestSuggestionList_SetItemsResetsSelection(t *testing.T) {
	l := NewSuggestionList(styles.New(styles.Dark))
	l.SetItems([]string{"for", "force"}, "fo")
	l.Move(1)
	l.SetItems([]string{"format", "forName"}, "for")

	got, _ := l.Selected()
	assert.Equal(t, "format", got)

	view := ansi.Strip(l.View())
	assert.Contains(t, view, "format")
	assert.Contains(t, view, "forName")
}
