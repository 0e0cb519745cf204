package readline

import (
	"strings"
	"unicode"

	"github.com/readline-go/readline/debug"
	istrings "github.com/readline-go/readline/strings"
)

// Buffer owns the text being edited and the cursor position. The text
// is stored as runes, so no edit can ever split a multi-byte character.
// The cursor is a rune offset and always satisfies
// 0 <= cursor <= len(text).
//
// Every boundary case is a no-op rather than an error: editing never
// fails on user input.
type Buffer struct {
	runes          []rune
	cursorPosition istrings.RuneNumber
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferWithText returns a Buffer holding the given text with the
// cursor at the end of it.
func NewBufferWithText(text string) *Buffer {
	b := NewBuffer()
	b.InsertTextMoveCursor(text)
	return b
}

// Text returns a snapshot of the current text.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// CursorPosition returns the cursor offset in runes.
func (b *Buffer) CursorPosition() istrings.RuneNumber {
	return b.cursorPosition
}

// TextBeforeCursor returns the text from the start of the buffer up to
// the cursor.
func (b *Buffer) TextBeforeCursor() string {
	return string(b.runes[:b.cursorPosition])
}

// TextAfterCursor returns the text from the cursor to the end of the
// buffer.
func (b *Buffer) TextAfterCursor() string {
	return string(b.runes[b.cursorPosition:])
}

// InsertTextMoveCursor inserts text at the cursor and advances the
// cursor past it.
func (b *Buffer) InsertTextMoveCursor(text string) {
	b.insert(text, true)
}

// InsertText inserts text at the cursor without moving the cursor.
func (b *Buffer) InsertText(text string) {
	b.insert(text, false)
}

func (b *Buffer) insert(text string, moveCursor bool) {
	if text == "" {
		return
	}
	inserted := []rune(text)
	updated := make([]rune, 0, len(b.runes)+len(inserted))
	updated = append(updated, b.runes[:b.cursorPosition]...)
	updated = append(updated, inserted...)
	updated = append(updated, b.runes[b.cursorPosition:]...)
	b.runes = updated
	if moveCursor {
		b.cursorPosition += istrings.RuneNumber(len(inserted))
	}
	b.assertValid()
}

// DeleteBeforeCursor removes up to count runes immediately before the
// cursor and returns the deleted text. Deleting at the start of the
// buffer is a no-op.
func (b *Buffer) DeleteBeforeCursor(count istrings.RuneNumber) string {
	if count <= 0 || b.cursorPosition == 0 {
		return ""
	}
	start := istrings.Clamp(b.cursorPosition-count, 0, b.cursorPosition)
	deleted := string(b.runes[start:b.cursorPosition])
	b.runes = append(b.runes[:start], b.runes[b.cursorPosition:]...)
	b.cursorPosition = start
	b.assertValid()
	return deleted
}

// Delete removes up to count runes at the cursor and returns the
// deleted text. Deleting at the end of the buffer is a no-op.
func (b *Buffer) Delete(count istrings.RuneNumber) string {
	if count <= 0 || b.cursorPosition >= istrings.RuneNumber(len(b.runes)) {
		return ""
	}
	end := istrings.Clamp(b.cursorPosition+count, b.cursorPosition, istrings.RuneNumber(len(b.runes)))
	deleted := string(b.runes[b.cursorPosition:end])
	b.runes = append(b.runes[:b.cursorPosition], b.runes[end:]...)
	b.assertValid()
	return deleted
}

// CursorLeft moves the cursor left by up to count runes.
func (b *Buffer) CursorLeft(count istrings.RuneNumber) bool {
	prev := b.cursorPosition
	b.cursorPosition = istrings.Clamp(b.cursorPosition-count, 0, istrings.RuneNumber(len(b.runes)))
	return b.cursorPosition != prev
}

// CursorRight moves the cursor right by up to count runes.
func (b *Buffer) CursorRight(count istrings.RuneNumber) bool {
	prev := b.cursorPosition
	b.cursorPosition = istrings.Clamp(b.cursorPosition+count, 0, istrings.RuneNumber(len(b.runes)))
	return b.cursorPosition != prev
}

// CursorStart moves the cursor to the start of the buffer.
func (b *Buffer) CursorStart() {
	b.cursorPosition = 0
}

// CursorEnd moves the cursor to the end of the buffer.
func (b *Buffer) CursorEnd() {
	b.cursorPosition = istrings.RuneNumber(len(b.runes))
}

// KillToEnd removes everything from the cursor to the end of the
// buffer and returns it.
func (b *Buffer) KillToEnd() string {
	deleted := string(b.runes[b.cursorPosition:])
	b.runes = b.runes[:b.cursorPosition]
	b.assertValid()
	return deleted
}

// KillWholeLine clears the buffer entirely and returns the previous
// text. The cursor moves to offset zero.
func (b *Buffer) KillWholeLine() string {
	deleted := string(b.runes)
	b.runes = nil
	b.cursorPosition = 0
	return deleted
}

// KillPrevWord removes the run of non-whitespace characters before the
// cursor together with the whitespace separating it from the cursor,
// and returns the deleted text.
func (b *Buffer) KillPrevWord() string {
	pos := b.cursorPosition
	for pos > 0 && unicode.IsSpace(b.runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.runes[pos-1]) {
		pos--
	}
	return b.DeleteBeforeCursor(b.cursorPosition - pos)
}

// Transpose swaps the two runes surrounding the cursor. With the
// cursor at the end of the buffer the final two runes are swapped
// instead. A buffer shorter than two runes is left unchanged.
func (b *Buffer) Transpose() {
	if len(b.runes) < 2 || b.cursorPosition == 0 {
		return
	}
	pos := b.cursorPosition
	if pos >= istrings.RuneNumber(len(b.runes)) {
		pos = istrings.RuneNumber(len(b.runes)) - 1
	}
	b.runes[pos-1], b.runes[pos] = b.runes[pos], b.runes[pos-1]
	if b.cursorPosition < istrings.RuneNumber(len(b.runes)) {
		b.cursorPosition++
	}
	b.assertValid()
}

// NewLine appends a line break at the cursor, used for multi-line
// continuation after an Incomplete validation result.
func (b *Buffer) NewLine() {
	b.InsertTextMoveCursor("\n")
}

// CursorPositionRow returns the index of the line the cursor is on.
func (b *Buffer) CursorPositionRow() int {
	return strings.Count(b.TextBeforeCursor(), "\n")
}

// CursorColumnText returns the text of the cursor's line before the
// cursor, used for display-column math.
func (b *Buffer) CursorColumnText() string {
	before := b.TextBeforeCursor()
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		return before[i+1:]
	}
	return before
}

func (b *Buffer) assertValid() {
	debug.Assert(
		b.cursorPosition >= 0 && b.cursorPosition <= istrings.RuneNumber(len(b.runes)),
		func() string { return "buffer cursor out of range" },
	)
}
