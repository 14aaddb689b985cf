package history

// none marks a missing link or an unset cursor.
const none = -1

// entry is one recorded snapshot. Links are indices into Timeline.entries.
type entry struct {
	text string
	prev int
	next int
}

// Timeline is an append-only log of committed snapshots with a browsing
// cursor. Entries live in a slice and link to each other by index, so the
// list has no pointer cycles to manage.
//
// The cursor normally sits on the entry matching the buffer. Undo and redo
// move the buffer without touching the timeline, so the step methods first
// resynchronize by content: the cursor jumps to the earliest entry whose
// text equals the caller's current text.
type Timeline struct {
	entries []entry
	head    int
	tail    int
	cursor  int
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{head: none, tail: none, cursor: none}
}

// Record appends a snapshot at the tail and moves the cursor onto it.
func (t *Timeline) Record(snapshot string) {
	idx := len(t.entries)
	t.entries = append(t.entries, entry{text: snapshot, prev: t.tail, next: none})

	if t.tail == none {
		t.head = idx
	} else {
		t.entries[t.tail].next = idx
	}
	t.tail = idx
	t.cursor = idx
}

// StepBackward moves the cursor to the previous entry and returns its text.
// It returns false when there is no earlier entry.
func (t *Timeline) StepBackward(current string) (string, bool) {
	return t.step(current, func(e entry) int { return e.prev })
}

// StepForward moves the cursor to the next entry and returns its text.
// It returns false when there is no later entry.
func (t *Timeline) StepForward(current string) (string, bool) {
	return t.step(current, func(e entry) int { return e.next })
}

func (t *Timeline) step(current string, link func(entry) int) (string, bool) {
	if t.cursor == none {
		return "", false
	}

	if t.entries[t.cursor].text != current {
		t.resync(current)
	}

	target := link(t.entries[t.cursor])
	if target == none {
		return "", false
	}
	t.cursor = target
	return t.entries[target].text, true
}

// resync moves the cursor to the first entry from head whose text equals
// current. When nothing matches the cursor stays put.
func (t *Timeline) resync(current string) {
	for i := t.head; i != none; i = t.entries[i].next {
		if t.entries[i].text == current {
			t.cursor = i
			return
		}
	}
}

// Clear drops every entry and unsets the cursor.
func (t *Timeline) Clear() {
	t.entries = nil
	t.head = none
	t.tail = none
	t.cursor = none
}

// Len returns the number of recorded entries.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// CursorOrdinal returns the zero-based position of the cursor counted from
// head. The second result is false when the position is unknown.
func (t *Timeline) CursorOrdinal() (int, bool) {
	if t.cursor == none {
		return 0, false
	}

	pos := 0
	for i := t.head; i != none; i = t.entries[i].next {
		if i == t.cursor {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// Current returns the text under the cursor.
func (t *Timeline) Current() (string, bool) {
	if t.cursor == none {
		return "", false
	}
	return t.entries[t.cursor].text, true
}

// Entries returns a copy of all snapshots from head to tail.
func (t *Timeline) Entries() []string {
	out := make([]string, 0, len(t.entries))
	for i := t.head; i != none; i = t.entries[i].next {
		out = append(out, t.entries[i].text)
	}
	return out
}
