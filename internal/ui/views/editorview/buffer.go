package editorview

import (
	"strings"
)

// textBuffer is the editable text shown in the view: runes plus a caret
// offset in runes. It knows nothing about history; the view reports every
// change to the editing model.
type textBuffer struct {
	runes []rune
	caret int
	// goal column kept across vertical moves through shorter lines
	goalCol int
}

func (b *textBuffer) String() string {
	return string(b.runes)
}

// Caret returns the caret as a rune offset.
func (b *textBuffer) Caret() int {
	return b.caret
}

// SetText replaces the content and places the caret, clamped.
func (b *textBuffer) SetText(text string, caret int) {
	b.runes = []rune(text)
	b.setCaret(caret)
}

// SetTextKeepCaret replaces the content, keeping the caret where it was as
// far as the new text allows. Used after undo and redo.
func (b *textBuffer) SetTextKeepCaret(text string) {
	b.SetText(text, b.caret)
}

func (b *textBuffer) setCaret(caret int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(b.runes) {
		caret = len(b.runes)
	}
	b.caret = caret
	_, b.goalCol = b.lineCol()
}

// Insert puts rs at the caret and moves the caret past them. Carriage
// returns from pasted text are dropped.
func (b *textBuffer) Insert(rs []rune) bool {
	clean := make([]rune, 0, len(rs))
	for _, r := range rs {
		if r != '\r' {
			clean = append(clean, r)
		}
	}
	if len(clean) == 0 {
		return false
	}
	out := make([]rune, 0, len(b.runes)+len(clean))
	out = append(out, b.runes[:b.caret]...)
	out = append(out, clean...)
	out = append(out, b.runes[b.caret:]...)
	b.runes = out
	b.setCaret(b.caret + len(clean))
	return true
}

// Backspace deletes the rune before the caret.
func (b *textBuffer) Backspace() bool {
	if b.caret == 0 {
		return false
	}
	b.runes = append(b.runes[:b.caret-1], b.runes[b.caret:]...)
	b.setCaret(b.caret - 1)
	return true
}

// Delete deletes the rune under the caret.
func (b *textBuffer) Delete() bool {
	if b.caret >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.caret], b.runes[b.caret+1:]...)
	return true
}

// Left moves the caret one rune back.
func (b *textBuffer) Left() {
	b.setCaret(b.caret - 1)
}

// Right moves the caret one rune forward.
func (b *textBuffer) Right() {
	b.setCaret(b.caret + 1)
}

// Home moves the caret to the start of its line.
func (b *textBuffer) Home() {
	b.setCaret(b.lineStart(b.caret))
}

// End moves the caret to the end of its line.
func (b *textBuffer) End() {
	b.setCaret(b.lineEnd(b.caret))
}

// Up moves the caret to the previous line, keeping the goal column.
func (b *textBuffer) Up() {
	start := b.lineStart(b.caret)
	if start == 0 {
		b.setCaret(0)
		return
	}
	b.moveToLine(b.lineStart(start - 1))
}

// Down moves the caret to the next line, keeping the goal column.
func (b *textBuffer) Down() {
	end := b.lineEnd(b.caret)
	if end >= len(b.runes) {
		b.setCaret(len(b.runes))
		return
	}
	b.moveToLine(end + 1)
}

func (b *textBuffer) moveToLine(start int) {
	goal := b.goalCol
	end := b.lineEnd(start)
	pos := start + goal
	if pos > end {
		pos = end
	}
	b.caret = pos
	b.goalCol = goal
}

func (b *textBuffer) lineStart(pos int) int {
	for pos > 0 && b.runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (b *textBuffer) lineEnd(pos int) int {
	for pos < len(b.runes) && b.runes[pos] != '\n' {
		pos++
	}
	return pos
}

// lineCol returns the zero-based line and rune column of the caret.
func (b *textBuffer) lineCol() (line, col int) {
	for i := 0; i < b.caret; i++ {
		if b.runes[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// Lines splits the content on newlines. A trailing newline yields a final
// empty line the caret can sit on.
func (b *textBuffer) Lines() []string {
	return strings.Split(string(b.runes), "\n")
}
