package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeAll commits each text as a genuine edit.
func typeAll(m *Model, texts ...string) {
	for _, text := range texts {
		m.OnBufferChanged(text)
	}
}

func TestNew_InitialState(t *testing.T) {
	m := New()

	assert.Equal(t, "", m.Text())
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, 0, m.UndoAvailableCount())
	assert.Equal(t, 0, m.RedoAvailableCount())
	assert.Equal(t, 1, m.TimelineSize())
	assert.False(t, m.IsDirty())

	pos, ok := m.TimelineCursorOrdinal()
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestLoadVocabulary(t *testing.T) {
	m := New()
	m.LoadVocabulary([]string{"class", "classLoader"})

	assert.True(t, m.Dictionary().Contains("classLoader"))
	assert.Equal(t, 2, m.Dictionary().Len())
	assert.Equal(t, []string{"class", "classLoader"}, m.QuerySuggestions(2, "cl"))
}

func TestOnBufferChanged_GenuineEdit(t *testing.T) {
	m := New()

	assert.True(t, m.OnBufferChanged("a"))
	assert.True(t, m.OnBufferChanged("ab"))
	assert.False(t, m.OnBufferChanged("ab"), "unchanged text is not an edit")

	assert.Equal(t, "ab", m.Text())
	assert.Equal(t, 2, m.UndoAvailableCount())
	assert.Equal(t, 3, m.TimelineSize())
	assert.True(t, m.IsDirty())
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	edits := []string{"h", "he", "hel", "hell", "hello"}

	for k := 0; k <= len(edits); k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			m := New()
			typeAll(m, edits...)

			for i := 0; i < k; i++ {
				require.True(t, m.Undo())
			}
			for i := 0; i < k; i++ {
				require.True(t, m.Redo())
			}

			assert.Equal(t, "hello", m.Text())
			assert.Equal(t, 0, m.RedoAvailableCount())
			assert.Equal(t, len(edits), m.UndoAvailableCount())
		})
	}
}

func TestUndo_MovesPoppedValueToRedo(t *testing.T) {
	m := New()
	typeAll(m, "one", "two")

	require.True(t, m.Undo())
	assert.Equal(t, "one", m.Text())
	assert.Equal(t, 1, m.RedoAvailableCount())

	require.True(t, m.Redo())
	assert.Equal(t, "two", m.Text())
}

func TestRedo_InvalidatedByGenuineEdit(t *testing.T) {
	m := New()
	typeAll(m, "a", "ab", "abc")

	m.Undo()
	m.Undo()
	require.Equal(t, 2, m.RedoAvailableCount())

	assert.True(t, m.OnBufferChanged("aX"))
	assert.Equal(t, 0, m.RedoAvailableCount())
	assert.False(t, m.Redo())
}

func TestUndo_Floor(t *testing.T) {
	m := New()
	assert.False(t, m.Undo())
	assert.Equal(t, "", m.Text())

	m.OnBufferChanged("x")
	assert.True(t, m.Undo())
	assert.False(t, m.Undo(), "seed snapshot must never be popped")
	assert.Equal(t, "", m.Text())
	assert.Equal(t, 0, m.UndoAvailableCount())
}

func TestRedo_EmptyIsNoop(t *testing.T) {
	m := New()
	m.OnBufferChanged("x")

	assert.False(t, m.Redo())
	assert.Equal(t, "x", m.Text())
}

func TestUndoRedo_MarkDirty(t *testing.T) {
	m := New()
	m.OnBufferChanged("x")
	m.MarkSaved("/tmp/x.txt")
	require.False(t, m.IsDirty())

	m.Undo()
	assert.True(t, m.IsDirty())

	m.MarkSaved("/tmp/x.txt")
	m.Redo()
	assert.True(t, m.IsDirty())
}

func TestUndo_DoesNotTouchTimeline(t *testing.T) {
	m := New()
	typeAll(m, "a", "b")
	size := m.TimelineSize()

	m.Undo()
	m.Redo()
	m.Undo()

	assert.Equal(t, size, m.TimelineSize())
}

func TestUndoLimit(t *testing.T) {
	m := New(WithUndoLimit(3))
	typeAll(m, "1", "2", "3", "4", "5")

	assert.Equal(t, 2, m.UndoAvailableCount())
	assert.Equal(t, 6, m.TimelineSize(), "the timeline is not bounded by the undo limit")

	require.True(t, m.Undo())
	require.True(t, m.Undo())
	assert.False(t, m.Undo())
	assert.Equal(t, "3", m.Text())
}

func TestNavigateHistory_ResyncAfterUndo(t *testing.T) {
	m := New()
	m.ResetDocument("S1")
	typeAll(m, "S2", "S3")

	require.True(t, m.Undo())
	require.True(t, m.Undo())
	require.Equal(t, "S1", m.Text())

	require.True(t, m.NavigateHistory(true, m.Text()))
	assert.Equal(t, "S2", m.Text())

	pos, ok := m.TimelineCursorOrdinal()
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestNavigateHistory_PushesUndoKeepsRedo(t *testing.T) {
	m := New()
	typeAll(m, "a", "ab", "abc")
	m.Undo()
	require.Equal(t, 1, m.RedoAvailableCount())
	undoBefore := m.UndoAvailableCount()

	require.True(t, m.NavigateHistory(false, m.Text()))
	assert.Equal(t, "a", m.Text())
	assert.Equal(t, undoBefore+1, m.UndoAvailableCount())
	assert.Equal(t, 1, m.RedoAvailableCount(), "timeline navigation must not clear redo")
	assert.Equal(t, 4, m.TimelineSize(), "timeline navigation must not record")
	assert.True(t, m.IsDirty())

	require.True(t, m.Undo())
	assert.Equal(t, "ab", m.Text())
}

func TestNavigateHistory_Boundaries(t *testing.T) {
	m := New()
	m.OnBufferChanged("only")

	assert.False(t, m.NavigateHistory(true, m.Text()))
	assert.Equal(t, "only", m.Text())

	require.True(t, m.NavigateHistory(false, m.Text()))
	assert.Equal(t, "", m.Text())
	assert.False(t, m.NavigateHistory(false, m.Text()))
	assert.Equal(t, "", m.Text())
}

func TestNavigateHistory_SameTextIsNoop(t *testing.T) {
	m := New()
	m.OnBufferChanged("x")
	m.Undo()
	m.OnBufferChanged("x")
	require.Equal(t, []string{"", "x", "x"}, m.TimelineEntries())
	undo := m.UndoAvailableCount()

	assert.False(t, m.NavigateHistory(false, "x"))
	assert.Equal(t, "x", m.Text())
	assert.Equal(t, undo, m.UndoAvailableCount())
}

func TestTimeline_AppendOnlyAcrossOperations(t *testing.T) {
	m := New()
	last := m.TimelineSize()
	check := func(step string) {
		t.Helper()
		assert.GreaterOrEqual(t, m.TimelineSize(), last, step)
		last = m.TimelineSize()
	}

	m.OnBufferChanged("a")
	check("edit")
	m.Undo()
	check("undo")
	m.Redo()
	check("redo")
	m.NavigateHistory(false, m.Text())
	check("navigate back")
	m.NavigateHistory(true, m.Text())
	check("navigate forward")
	m.OnBufferChanged("b")
	check("edit")
	m.QuerySuggestions(1, "b")
	check("query")
}

func TestResetDocument(t *testing.T) {
	m := New()
	typeAll(m, "a", "b")
	m.Undo()

	m.ResetDocumentWithFile("loaded\n", "/home/u/notes.txt")

	assert.Equal(t, "loaded\n", m.Text())
	assert.Equal(t, 0, m.UndoAvailableCount())
	assert.Equal(t, 0, m.RedoAvailableCount())
	assert.Equal(t, 1, m.TimelineSize())
	assert.False(t, m.IsDirty())
	assert.Equal(t, "/home/u/notes.txt", m.FileIdentity())
	assert.False(t, m.Undo())

	m.ResetDocument("")
	assert.Equal(t, "", m.Text())
	assert.Equal(t, "", m.FileIdentity())
}

func TestBufferListener_ReplayDoesNotRecommit(t *testing.T) {
	var m *Model
	var seen []string
	m = New(WithBufferListener(func(text string) {
		seen = append(seen, text)
		// Behave like a widget whose change events feed straight back.
		m.OnBufferChanged(text)
	}))

	typeAll(m, "a", "ab")
	timeline := m.TimelineSize()

	require.True(t, m.Undo())
	require.True(t, m.Redo())
	require.True(t, m.NavigateHistory(false, m.Text()))

	assert.Equal(t, []string{"a", "ab", "a"}, seen)
	assert.Equal(t, timeline, m.TimelineSize(), "replays must not record on the timeline")
	assert.Equal(t, 0, m.RedoAvailableCount())
}

func TestMutatorDuringReplayPanics(t *testing.T) {
	var m *Model
	m = New(WithBufferListener(func(string) {
		if m.Mode().Replaying() {
			m.Undo()
		}
	}))
	m.OnBufferChanged("a")

	assert.PanicsWithValue(t, "editor: Undo called while replaying-undo", func() { m.Undo() })
}

func TestUninitializedModelPanics(t *testing.T) {
	var m Model
	assert.Panics(t, func() { m.Undo() })
	assert.Panics(t, func() { m.OnBufferChanged("x") })
}
