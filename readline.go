// Package readline implements an interactive line editor for
// terminals: it switches the terminal into raw mode, decodes
// keystrokes into editing commands, maintains the line buffer and
// history, and invokes pluggable completion, highlighting, hinting and
// validation capabilities at defined points. When standard input is
// not an interactive terminal, or the terminal type cannot support raw
// mode, reads fall back to plain line-buffered input.
package readline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/readline-go/readline/debug"
)

// unsupportedTermTypes are TERM values whose terminals cannot handle
// raw mode; the editor falls back to line-buffered reads for them.
var unsupportedTermTypes = []string{"dumb", "cons25", "emacs"}

func isUnsupportedTerm(term string) bool {
	for _, t := range unsupportedTermTypes {
		if term == t {
			return true
		}
	}
	return false
}

// Editor reads lines interactively. The zero value is not usable; use
// New. One Editor owns the terminal exclusively for the duration of
// each Readline call; it is not safe for concurrent use.
type Editor struct {
	reader  Reader
	out     io.Writer
	history HistoryProvider
	helper  *Helper

	// test seams, defaulted by New
	fallbackIn io.Reader
	isTerminal func(fd uintptr) bool
	getEnv     func(string) string
}

// Readline writes the prompt and reads one line with full editing,
// returning the submitted text without its trailing newline. It
// returns ErrInterrupt when the user aborts with Control-C and ErrEOF
// when input ends with nothing to submit.
func Readline(prompt string) (string, error) {
	return New().Readline(prompt)
}

// History returns the editor's history.
func (e *Editor) History() HistoryProvider {
	return e.history
}

// Readline writes the prompt and reads one line. On an interactive,
// raw-capable terminal the full editing loop runs; otherwise one line
// is read directly from the input stream with no editing and no
// capability invocation.
func (e *Editor) Readline(prompt string) (string, error) {
	if !e.isTerminal(os.Stdin.Fd()) || isUnsupportedTerm(e.getEnv("TERM")) {
		return e.readLineBuffered(prompt)
	}
	return e.readRaw(prompt)
}

// readLineBuffered is the non-interactive fallback: the prompt is
// written, then one line is read verbatim from the input stream with
// its trailing newline stripped.
func (e *Editor) readLineBuffered(prompt string) (string, error) {
	out := e.out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, prompt); err != nil {
		return "", fmt.Errorf("readline: write prompt: %w", err)
	}

	line, err := bufio.NewReader(e.fallbackIn).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrEOF
			}
			// EOF after partial input still yields the input.
			return line, nil
		}
		return "", fmt.Errorf("readline: read: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// readRaw runs the interactive editing loop. Raw mode is entered
// through the reader's Open and released by its Close exactly once on
// every exit path; a restore failure surfaces as the returned error
// even when the read itself succeeded.
func (e *Editor) readRaw(prompt string) (line string, err error) {
	debug.Log("start readline")
	defer debug.Log("stop readline")

	if err := e.reader.Open(); err != nil {
		return "", err
	}
	defer func() {
		if cerr := e.reader.Close(); cerr != nil {
			debug.Log("terminal restore failed: " + cerr.Error())
			if err == nil {
				line, err = "", cerr
			}
		}
	}()

	winch := notifyWinch()
	defer stopWinch(winch)

	renderer := NewRenderer(e.out, e.helper)
	renderer.SetPrompt(prompt)
	renderer.UpdateWinSize(e.reader.GetWinSize())

	buf := NewBuffer()
	e.history.Clear()
	completion := NewCompletionManager(e.helper)
	d := newDecoder(e.reader)

	var message string
	render := func() error {
		hint, _ := e.helper.Hint(buf.Text(), buf.CursorPosition())
		return renderer.Render(buf, hint, message)
	}
	if err := render(); err != nil {
		return "", err
	}

	for {
		ev, rerr := d.next()
		if rerr != nil {
			_ = renderer.BreakLine(buf)
			if errors.Is(rerr, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("readline: read: %w", rerr)
		}

		// Drain any resize that arrived while blocked on the read.
		select {
		case <-winch:
			renderer.UpdateWinSize(e.reader.GetWinSize())
		default:
		}

		// Any key but the completion commands ends a completion
		// cycle, accepting whatever the buffer holds.
		if ev.key != Tab && ev.key != BackTab && completion.Completing() {
			completion.Reset()
		}

		before := buf.Text()

		switch ev.key {
		case Enter, ControlJ:
			res := e.helper.Validate(buf.Text())
			switch res.Status {
			case ValidationValid:
				_ = renderer.BreakLine(buf)
				text := buf.Text()
				if text != "" {
					e.history.Add(text)
				}
				return text, nil
			case ValidationIncomplete:
				buf.NewLine()
				message = ""
			case ValidationInvalid:
				message = res.Message
			}

		case ControlC:
			_ = renderer.BreakLine(buf)
			return "", ErrInterrupt

		case ControlD:
			if buf.Text() == "" {
				_ = renderer.BreakLine(buf)
				return "", ErrEOF
			}
			buf.Delete(1)

		case ControlA, Home:
			buf.CursorStart()
		case ControlE, End:
			buf.CursorEnd()
		case ControlB, Left:
			buf.CursorLeft(1)
		case ControlF, Right:
			buf.CursorRight(1)
		case ControlH, Backspace:
			buf.DeleteBeforeCursor(1)
		case Delete:
			buf.Delete(1)

		case Tab:
			completion.Next(buf)
		case BackTab:
			completion.Previous(buf)

		case ControlK:
			buf.KillToEnd()
		case ControlU:
			buf.KillWholeLine()
		case ControlW:
			buf.KillPrevWord()
		case ControlT:
			buf.Transpose()

		case ControlL:
			if err := renderer.ClearScreen(); err != nil {
				return "", err
			}

		case ControlP, Up:
			if next, ok := e.history.Older(buf); ok {
				buf = next
			}
		case ControlN, Down:
			if next, ok := e.history.Newer(buf); ok {
				buf = next
			}

		case NotDefined:
			buf.InsertTextMoveCursor(string(ev.r))

		default:
			// Escape, Ignore and unbound control keys are no-ops.
		}

		if buf.Text() != before {
			if e.helper.ValidateWhileTyping() {
				if res := e.helper.Validate(buf.Text()); res.Status == ValidationInvalid {
					message = res.Message
				} else {
					message = ""
				}
			} else {
				message = ""
			}
		}

		if err := render(); err != nil {
			return "", err
		}
	}
}
