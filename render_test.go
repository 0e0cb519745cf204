package readline

import (
	"strings"
	"testing"
)

func TestRendererRenderSingleLine(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")

	buf := NewBufferWithText("hello")
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\r\x1b[J") {
		t.Errorf("frame should start by erasing the previous frame, got %q", got)
	}
	if !strings.Contains(got, "> hello") {
		t.Errorf("frame should contain the prompt and text, got %q", got)
	}
	// Cursor lands after "> hello" (7 columns).
	if !strings.Contains(got, "\x1b[7C") {
		t.Errorf("cursor should be placed at column 7, got %q", got)
	}
}

func TestRendererRenderMultiLine(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")

	buf := NewBufferWithText("(foo\nbar")
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "> (foo\r\nbar") {
		t.Errorf("continuation lines should follow the first row, got %q", got)
	}
}

func TestRendererRenderHintAndMessage(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")

	buf := NewBufferWithText("gi")
	if err := r.Render(buf, "t status", "try: git"); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "\x1b[2mt status\x1b[0m") {
		t.Errorf("hint should be rendered dimmed, got %q", got)
	}
	if !strings.Contains(got, "\r\ntry: git") {
		t.Errorf("message should be rendered on its own row, got %q", got)
	}
	// The cursor must return from the message row to the input row.
	if !strings.Contains(got, "\x1b[1A") {
		t.Errorf("cursor should move back up over the message row, got %q", got)
	}
}

func TestRendererSecondRenderErasesFirst(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")

	buf := NewBufferWithText("one\ntwo")
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	// The cursor was left on row 1 of the previous frame, so the next
	// frame first moves up one row to the prompt row.
	if !strings.HasPrefix(got, "\x1b[1A\r\x1b[J") {
		t.Errorf("second frame should move to the prompt row before erasing, got %q", got)
	}
}

func TestRendererBreakLine(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")

	buf := NewBufferWithText("done")
	if err := r.BreakLine(buf); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "> done") {
		t.Errorf("final input should remain visible, got %q", got)
	}
	if !strings.HasSuffix(got, "\r\n") {
		t.Errorf("BreakLine should end on a fresh row, got %q", got)
	}
}

func TestRendererWrappedLineCursorMath(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	r.SetPrompt("> ")
	r.UpdateWinSize(&WinSize{Row: 24, Col: 10})

	// Prompt (2) plus 13 characters is 15 columns: two visual rows on a
	// 10-column terminal, cursor on the second at column 5.
	buf := NewBufferWithText("0123456789abc")
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}
	if r.previousCursorRow != 1 {
		t.Errorf("cursor should be tracked on visual row 1, got %d", r.previousCursorRow)
	}
	if !strings.Contains(out.String(), "\x1b[5C") {
		t.Errorf("cursor should land at column 5 of the wrapped row, got %q", out.String())
	}

	// The next repaint must climb back over the wrapped row.
	out.Reset()
	if err := r.Render(buf, "", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[1A\r\x1b[J") {
		t.Errorf("repaint should move up over the wrapped row first, got %q", out.String())
	}
}

func TestRendererClearScreen(t *testing.T) {
	var out strings.Builder
	r := NewRenderer(&out, &Helper{})
	if err := r.ClearScreen(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\x1b[2J\x1b[H" {
		t.Errorf("unexpected clear sequence %q", out.String())
	}
}

func TestRendererUpdateWinSize(t *testing.T) {
	r := NewRenderer(&strings.Builder{}, &Helper{})
	r.UpdateWinSize(&WinSize{Row: 50, Col: 120})
	if r.col != 120 || r.row != 50 {
		t.Errorf("unexpected dimensions col=%d row=%d", r.col, r.row)
	}

	// A zero-width report is ignored rather than breaking layout math.
	r.UpdateWinSize(&WinSize{Row: 0, Col: 0})
	if r.col != 120 || r.row != 50 {
		t.Errorf("zero-size update should be ignored, got col=%d row=%d", r.col, r.row)
	}
}
