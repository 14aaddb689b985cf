/*
Package editor implements the editing model behind smartedit: a live text
buffer, undo and redo snapshot stacks, an append-only edit timeline, and
prefix suggestions from a dictionary.

The model is the only component a user interface talks to. It never
performs I/O and has no notion of time; debouncing suggestion queries and
reading or writing files belong to the caller.

# Edits

Every buffer change reported through OnBufferChanged is a genuine edit when
the model is in ModeNormal and the text differs from the top of the undo
stack. A genuine edit pushes the text onto the undo stack, records it on the
timeline and clears the redo stack.

Undo, Redo and NavigateHistory replace the buffer themselves. While they do,
the model is in a replay mode and any OnBufferChanged call arriving from a
buffer listener is ignored, so replays never recommit.

# Suggestions

	m := editor.New(editor.WithVocabulary(dictionary.Builtin()))
	words := m.QuerySuggestions(caret, text)
	if len(words) > 0 {
		text, caret, _ = m.ApplySuggestion(words[0], caret, text)
	}

Caret positions and indices are rune offsets into the buffer text.
*/
package editor
