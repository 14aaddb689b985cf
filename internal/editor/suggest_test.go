package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStart(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		caret int
		want  int
	}{
		{"empty", "", 0, 0},
		{"whole word", "class", 5, 0},
		{"after space", "int cla", 7, 4},
		{"mid word", "int classic", 7, 4},
		{"after symbol", "a.toStr", 7, 2},
		{"caret after space", "int ", 4, 4},
		{"digits count", "var2x", 5, 0},
		{"unicode letters", "x naïve", 7, 2},
		{"caret beyond end", "abc", 99, 0},
		{"negative caret", "abc", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenStart([]rune(tt.text), tt.caret))
		})
	}
}

func TestCurrentPrefix(t *testing.T) {
	assert.Equal(t, "cla", CurrentPrefix("int cla", 7))
	assert.Equal(t, "in", CurrentPrefix("int cla", 2))
	assert.Equal(t, "", CurrentPrefix("int ", 4))
}

func TestQuerySuggestions_Boundary(t *testing.T) {
	m := New(WithVocabulary([]string{"class", "classLoader"}))

	got := m.QuerySuggestions(3, "cla")
	assert.Equal(t, []string{"class", "classLoader"}, got)
	for _, s := range got {
		assert.Contains(t, s, "cla")
	}

	assert.Empty(t, m.QuerySuggestions(1, "c"), "one character is below the threshold")
	assert.Empty(t, m.QuerySuggestions(0, ""))
	assert.Empty(t, m.QuerySuggestions(4, "cla "))
	assert.Empty(t, m.QuerySuggestions(3, "xyz"))
}

func TestQuerySuggestions_CaseFolding(t *testing.T) {
	vocab := []string{"class", "Class"}

	folded := New(WithVocabulary(vocab))
	assert.Equal(t, []string{"class"}, folded.QuerySuggestions(3, "CLA"))

	exact := New(WithVocabulary(vocab), WithCaseFolding(false))
	assert.Equal(t, []string{"Class"}, exact.QuerySuggestions(3, "Cla"))
}

func TestQuerySuggestions_MinPrefixLength(t *testing.T) {
	m := New(WithVocabulary([]string{"int", "interface"}), WithMinPrefixLength(3))

	assert.Empty(t, m.QuerySuggestions(2, "in"))
	assert.Equal(t, []string{"int", "interface"}, m.QuerySuggestions(3, "int"))
}

func TestQuerySuggestions_IsPure(t *testing.T) {
	m := New(WithVocabulary([]string{"class"}))
	m.OnBufferChanged("cl")
	before := m.Status()

	got := m.QuerySuggestions(2, "cl")
	got[0] = "mutated"

	assert.Equal(t, before, m.Status())
	assert.Equal(t, []string{"class"}, m.QuerySuggestions(2, "cl"))
}

func TestApplySuggestion_EndToEnd(t *testing.T) {
	m := New(WithVocabulary([]string{"class"}))
	m.OnBufferChanged("int cla")
	undo, timeline := m.UndoAvailableCount(), m.TimelineSize()

	text, caret, ok := m.ApplySuggestion("class", 7, "int cla")
	require.True(t, ok)
	assert.Equal(t, "int class", text)
	assert.Equal(t, 9, caret)
	assert.Equal(t, "int class", m.Text())
	assert.Equal(t, undo+1, m.UndoAvailableCount(), "recorded exactly once on the undo stack")
	assert.Equal(t, timeline+1, m.TimelineSize(), "recorded exactly once on the timeline")

	require.True(t, m.Undo())
	assert.Equal(t, "int cla", m.Text())
}

func TestApplySuggestion_MidBuffer(t *testing.T) {
	m := New()
	m.OnBufferChanged("x = Str;")

	text, caret, ok := m.ApplySuggestion("String", 7, "x = Str;")
	require.True(t, ok)
	assert.Equal(t, "x = String;", text)
	assert.Equal(t, 10, caret)
}

func TestApplySuggestion_ClearsRedo(t *testing.T) {
	m := New()
	m.OnBufferChanged("im")
	m.OnBufferChanged("imp")
	m.Undo()
	require.Equal(t, 1, m.RedoAvailableCount())

	_, _, ok := m.ApplySuggestion("import", 2, "im")
	require.True(t, ok)
	assert.Equal(t, 0, m.RedoAvailableCount())
}

func TestApplySuggestion_EmptySpanIsNoop(t *testing.T) {
	m := New()
	m.OnBufferChanged("int ")
	status := m.Status()

	text, caret, ok := m.ApplySuggestion("class", 4, "int ")
	assert.False(t, ok)
	assert.Equal(t, "int ", text)
	assert.Equal(t, 4, caret)
	assert.Equal(t, status, m.Status())
}

func TestApplySuggestion_NotifiesListener(t *testing.T) {
	var got string
	m := New(WithBufferListener(func(text string) { got = text }))

	m.ApplySuggestion("while", 2, "wh")
	assert.Equal(t, "while", got)
}
