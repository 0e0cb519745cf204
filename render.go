package readline

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-colorable"

	"github.com/readline-go/readline/debug"
	istrings "github.com/readline-go/readline/strings"
)

// Renderer redraws the prompt and buffer after every edit. Each
// refresh repaints the whole input area: the cursor is returned to the
// first prompt row, everything below is erased, and the frame is
// rewritten with the helper's display transformations applied. Only
// the renderer writes to the output stream.
type Renderer struct {
	out    io.Writer
	prompt string
	helper *Helper

	col istrings.Width
	row int

	// previousCursorRow is the frame row the cursor was left on, so
	// the next refresh knows how far up the prompt row is.
	previousCursorRow int
}

// NewRenderer returns a renderer writing to the given stream.
func NewRenderer(out io.Writer, helper *Helper) *Renderer {
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	return &Renderer{
		out:    out,
		helper: helper,
		col:    DefColCount,
		row:    DefRowCount,
	}
}

// UpdateWinSize records the terminal dimensions reported by the
// reader.
func (r *Renderer) UpdateWinSize(ws *WinSize) {
	if ws == nil || ws.Col == 0 {
		return
	}
	r.col = istrings.Width(ws.Col)
	r.row = int(ws.Row)
}

// SetPrompt sets the prompt written before the first input row.
func (r *Renderer) SetPrompt(prompt string) {
	r.prompt = prompt
}

// Render repaints the prompt, the buffer content, an optional inline
// hint past the cursor, and an optional message row below the input,
// then places the terminal cursor at the buffer's cursor position. Row
// arithmetic counts visual rows, so lines wider than the terminal that
// wrap are repositioned over correctly.
func (r *Renderer) Render(buf *Buffer, hint, message string) error {
	var frame bytes.Buffer

	r.moveToFrameStart(&frame)

	promptWidth := istrings.GetWidth(r.prompt)
	lines := strings.Split(buf.Text(), "\n")
	pos := buf.CursorPosition()
	totalRows := 0
	for i, line := range lines {
		if i == 0 {
			frame.WriteString(r.helper.HighlightPrompt(r.prompt))
		} else {
			frame.WriteString("\r\n")
		}
		frame.WriteString(r.helper.HighlightLine(line, pos))
		w := istrings.GetWidth(line)
		if i == 0 {
			w += promptWidth
		}
		if i == len(lines)-1 && hint != "" {
			w += istrings.GetWidth(hint)
		}
		totalRows += r.rowsFor(w)
	}
	if hint != "" {
		frame.WriteString("\x1b[2m")
		frame.WriteString(r.helper.HighlightHint(hint))
		frame.WriteString("\x1b[0m")
	}
	if message != "" {
		frame.WriteString("\r\n")
		frame.WriteString(message)
		totalRows += r.rowsFor(istrings.GetWidth(message))
	}

	// Reposition from the frame's last row to the cursor's cell.
	cursorRow := 0
	for i := 0; i < buf.CursorPositionRow(); i++ {
		w := istrings.GetWidth(lines[i])
		if i == 0 {
			w += promptWidth
		}
		cursorRow += r.rowsFor(w)
	}
	colWidth := istrings.GetWidth(buf.CursorColumnText())
	if buf.CursorPositionRow() == 0 {
		colWidth += promptWidth
	}
	cursorRow += int(colWidth) / int(r.col)
	col := colWidth % r.col
	if up := totalRows - 1 - cursorRow; up > 0 {
		fmt.Fprintf(&frame, "\x1b[%dA", up)
	}
	frame.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&frame, "\x1b[%dC", col)
	}
	r.previousCursorRow = cursorRow

	return r.flush(frame.Bytes())
}

// rowsFor returns the number of visual rows a logical line of the
// given display width occupies.
func (r *Renderer) rowsFor(w istrings.Width) int {
	if r.col <= 0 {
		return 1
	}
	return int(w)/int(r.col) + 1
}

// BreakLine repaints the final state of the buffer without hint or
// message and moves to a fresh row, leaving the completed input
// visible the way a cooked-mode terminal would.
func (r *Renderer) BreakLine(buf *Buffer) error {
	var frame bytes.Buffer
	r.moveToFrameStart(&frame)

	lines := strings.Split(buf.Text(), "\n")
	for i, line := range lines {
		if i == 0 {
			frame.WriteString(r.helper.HighlightPrompt(r.prompt))
		} else {
			frame.WriteString("\r\n")
		}
		frame.WriteString(r.helper.HighlightLine(line, buf.CursorPosition()))
	}
	frame.WriteString("\r\n")
	r.previousCursorRow = 0

	return r.flush(frame.Bytes())
}

// ClearScreen erases the whole screen and homes the cursor; the caller
// re-renders afterwards.
func (r *Renderer) ClearScreen() error {
	r.previousCursorRow = 0
	return r.flush([]byte("\x1b[2J\x1b[H"))
}

// moveToFrameStart returns the cursor to the prompt row and erases the
// previous frame.
func (r *Renderer) moveToFrameStart(frame *bytes.Buffer) {
	if r.previousCursorRow > 0 {
		fmt.Fprintf(frame, "\x1b[%dA", r.previousCursorRow)
	}
	frame.WriteString("\r\x1b[J")
}

func (r *Renderer) flush(p []byte) error {
	_, err := r.out.Write(p)
	if err != nil {
		debug.Log("render flush failed: " + err.Error())
	}
	return err
}
