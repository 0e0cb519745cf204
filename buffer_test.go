package readline

import (
	"testing"

	istrings "github.com/readline-go/readline/strings"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.Text() != "" {
		t.Errorf("Text should be empty, got %#v", b.Text())
	}
	if b.cursorPosition != 0 {
		t.Errorf("cursorPosition should be %#v, got %#v", 0, b.cursorPosition)
	}
}

func TestBuffer_InsertText(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("some_text")

	if b.Text() != "some_text" {
		t.Errorf("Text should be %#v, got %#v", "some_text", b.Text())
	}

	if b.cursorPosition != istrings.RuneCountInString("some_text") {
		t.Errorf("cursorPosition should be %#v, got %#v", istrings.RuneCountInString("some_text"), b.cursorPosition)
	}
}

func TestBuffer_InsertText_HoldCursor(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("ABC")
	b.CursorLeft(1)
	b.InsertText("DEF")

	if b.Text() != "ABDEFC" {
		t.Errorf("Text should be %#v, got %#v", "ABDEFC", b.Text())
	}
	if b.cursorPosition != istrings.RuneCountInString("AB") {
		t.Errorf("cursorPosition should be %#v, got %#v", istrings.RuneCountInString("AB"), b.cursorPosition)
	}
}

func TestBuffer_CursorMovement(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("some_text")

	b.CursorLeft(1)
	b.CursorLeft(2)
	b.CursorRight(1)
	b.InsertTextMoveCursor("A")
	if b.Text() != "some_teAxt" {
		t.Errorf("Text should be %#v, got %#v", "some_teAxt", b.Text())
	}
	if b.cursorPosition != istrings.RuneCountInString("some_teA") {
		t.Errorf("cursorPosition should be %#v, got %#v", istrings.RuneCountInString("some_teA"), b.cursorPosition)
	}

	// Moving over left character counts.
	b.CursorLeft(100)
	b.InsertTextMoveCursor("A")
	if b.Text() != "Asome_teAxt" {
		t.Errorf("Text should be %#v, got %#v", "Asome_teAxt", b.Text())
	}
	if b.cursorPosition != istrings.RuneCountInString("A") {
		t.Errorf("cursorPosition should be %#v, got %#v", istrings.RuneCountInString("A"), b.cursorPosition)
	}

	// Going right already at right end.
	b.CursorEnd()
	if moved := b.CursorRight(1); moved {
		t.Error("CursorRight at end of buffer should report no movement")
	}
}

func TestBuffer_CursorMovement_WithMultiByte(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("あいうえお")
	b.CursorLeft(1)
	if l := b.TextAfterCursor(); l != "お" {
		t.Errorf("Should be 'お', but got %s", l)
	}
	b.InsertTextMoveCursor("żółć")
	if b.Text() != "あいうえżółćお" {
		t.Errorf("Text should be %#v, got %#v", "あいうえżółćお", b.Text())
	}
}

func TestBuffer_CursorStartEnd(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("some_text")
	b.CursorStart()
	if b.cursorPosition != 0 {
		t.Errorf("cursorPosition should be %#v, got %#v", 0, b.cursorPosition)
	}
	b.CursorEnd()
	if b.cursorPosition != istrings.RuneCountInString("some_text") {
		t.Errorf("cursorPosition should be %#v, got %#v", istrings.RuneCountInString("some_text"), b.cursorPosition)
	}
}

func TestBuffer_DeleteBeforeCursor(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("some_text")
	b.CursorLeft(2)
	deleted := b.DeleteBeforeCursor(1)

	if b.Text() != "some_txt" {
		t.Errorf("Should be %#v, got %#v", "some_txt", b.Text())
	}
	if deleted != "e" {
		t.Errorf("Should be %#v, got %#v", "e", deleted)
	}
	if b.cursorPosition != istrings.RuneCountInString("some_t") {
		t.Errorf("Should be %#v, got %#v", istrings.RuneCountInString("some_t"), b.cursorPosition)
	}

	// Delete over the characters length before cursor.
	deleted = b.DeleteBeforeCursor(100)
	if deleted != "some_t" {
		t.Errorf("Should be %#v, got %#v", "some_t", deleted)
	}
	if b.Text() != "xt" {
		t.Errorf("Should be %#v, got %#v", "xt", b.Text())
	}

	// If cursor position is a beginning of line, it has no effect.
	deleted = b.DeleteBeforeCursor(1)
	if deleted != "" {
		t.Errorf("Should be empty, got %#v", deleted)
	}
}

func TestBuffer_Delete(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("some_text")
	b.CursorLeft(2)
	deleted := b.Delete(1)

	if b.Text() != "some_tet" {
		t.Errorf("Should be %#v, got %#v", "some_tet", b.Text())
	}
	if deleted != "x" {
		t.Errorf("Should be %#v, got %#v", "x", deleted)
	}

	// Delete over the characters length after cursor.
	deleted = b.Delete(100)
	if deleted != "t" {
		t.Errorf("Should be %#v, got %#v", "t", deleted)
	}

	// If cursor position is the end of line, it has no effect.
	deleted = b.Delete(1)
	if deleted != "" {
		t.Errorf("Should be empty, got %#v", deleted)
	}
}

func TestBuffer_KillToEnd(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("hello world")
	b.CursorLeft(5)
	deleted := b.KillToEnd()

	if b.Text() != "hello " {
		t.Errorf("Should be %#v, got %#v", "hello ", b.Text())
	}
	if deleted != "world" {
		t.Errorf("Should be %#v, got %#v", "world", deleted)
	}
}

func TestBuffer_KillWholeLine(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("hello world")
	b.CursorLeft(5)
	deleted := b.KillWholeLine()

	if b.Text() != "" {
		t.Errorf("Should be empty, got %#v", b.Text())
	}
	if deleted != "hello world" {
		t.Errorf("Should be %#v, got %#v", "hello world", deleted)
	}
	if b.cursorPosition != 0 {
		t.Errorf("cursorPosition should be %#v, got %#v", 0, b.cursorPosition)
	}
}

func TestBuffer_KillPrevWord(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("hello world")
	deleted := b.KillPrevWord()
	if b.Text() != "hello " {
		t.Errorf("Should be %#v, got %#v", "hello ", b.Text())
	}
	if deleted != "world" {
		t.Errorf("Should be %#v, got %#v", "world", deleted)
	}

	// Trailing whitespace is removed together with the word.
	b = NewBuffer()
	b.InsertTextMoveCursor("hello world   ")
	deleted = b.KillPrevWord()
	if b.Text() != "hello " {
		t.Errorf("Should be %#v, got %#v", "hello ", b.Text())
	}
	if deleted != "world   " {
		t.Errorf("Should be %#v, got %#v", "world   ", deleted)
	}

	// Empty buffer has no effect.
	b = NewBuffer()
	if deleted = b.KillPrevWord(); deleted != "" {
		t.Errorf("Should be empty, got %#v", deleted)
	}
}

func TestBuffer_Transpose(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("hello world")
	b.CursorLeft(2)
	b.Transpose()
	ac := b.Text()
	ex := "hello wrold"
	if ac != ex {
		t.Errorf("Should be %#v, got %#v", ex, ac)
	}

	// At the end of the buffer the final two runes are swapped.
	b = NewBuffer()
	b.InsertTextMoveCursor("ab")
	b.Transpose()
	if b.Text() != "ba" {
		t.Errorf("Should be %#v, got %#v", "ba", b.Text())
	}

	// Shorter than two runes is unchanged.
	b = NewBuffer()
	b.InsertTextMoveCursor("a")
	b.Transpose()
	if b.Text() != "a" {
		t.Errorf("Should be %#v, got %#v", "a", b.Text())
	}
}

func TestBuffer_NewLine(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("  hello")
	b.NewLine()
	ac := b.Text()
	ex := "  hello\n"
	if ac != ex {
		t.Errorf("Should be %#v, got %#v", ex, ac)
	}
}

func TestBuffer_CursorPositionRow(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("line1\nline2\nline3")
	if row := b.CursorPositionRow(); row != 2 {
		t.Errorf("Should be %#v, got %#v", 2, row)
	}
	b.CursorStart()
	if row := b.CursorPositionRow(); row != 0 {
		t.Errorf("Should be %#v, got %#v", 0, row)
	}
}

func TestBuffer_CursorColumnText(t *testing.T) {
	b := NewBuffer()
	b.InsertTextMoveCursor("line1\nline2")
	b.CursorLeft(2)
	if col := b.CursorColumnText(); col != "lin" {
		t.Errorf("Should be %#v, got %#v", "lin", col)
	}

	b = NewBuffer()
	b.InsertTextMoveCursor("abc")
	if col := b.CursorColumnText(); col != "abc" {
		t.Errorf("Should be %#v, got %#v", "abc", col)
	}
}
