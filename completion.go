package readline

import (
	"github.com/readline-go/readline/debug"
	istrings "github.com/readline-go/readline/strings"
)

// CompletionManager tracks the completion cycle for the span of text
// being completed. Repeated Complete commands cycle through the
// candidates (wrapping back to the user's original text); any other
// key accepts whatever is currently in the buffer and ends the cycle.
type CompletionManager struct {
	completer  Completer
	candidates []Candidate

	// selected indexes candidates; -1 selects the original text.
	selected       int
	startCharIndex istrings.RuneNumber
	original       string
	insertedLen    istrings.RuneNumber
	completing     bool
}

// NewCompletionManager returns a manager for the given completer.
func NewCompletionManager(completer Completer) *CompletionManager {
	return &CompletionManager{completer: completer, selected: -1}
}

// Completing reports whether a completion cycle is in progress.
func (c *CompletionManager) Completing() bool {
	return c.completing
}

// Candidates returns the candidates of the current cycle.
func (c *CompletionManager) Candidates() []Candidate {
	return c.candidates
}

// Selected returns the currently selected candidate, if any.
func (c *CompletionManager) Selected() (Candidate, bool) {
	if !c.completing || c.selected < 0 || c.selected >= len(c.candidates) {
		return Candidate{}, false
	}
	return c.candidates[c.selected], true
}

// Start queries the completer for the buffer's current state and
// begins a cycle. It reports false when there is nothing to complete.
func (c *CompletionManager) Start(buf *Buffer) bool {
	if c.completer == nil {
		return false
	}
	pos := buf.CursorPosition()
	start, candidates := c.completer.Complete(buf.Text(), pos)
	if len(candidates) == 0 {
		return false
	}
	start = istrings.Clamp(start, 0, pos)

	c.candidates = candidates
	c.selected = -1
	c.startCharIndex = start
	c.insertedLen = pos - start
	c.original = string([]rune(buf.Text())[start:pos])
	c.completing = true
	return true
}

// Next replaces the completed span with the next candidate, wrapping
// to the original text after the last one. Outside a cycle it starts
// one first.
func (c *CompletionManager) Next(buf *Buffer) {
	if !c.completing && !c.Start(buf) {
		return
	}
	c.selected++
	if c.selected >= len(c.candidates) {
		c.selected = -1
	}
	c.applySelection(buf)
}

// Previous replaces the completed span with the previous candidate,
// wrapping from the original text to the last candidate.
func (c *CompletionManager) Previous(buf *Buffer) {
	if !c.completing && !c.Start(buf) {
		return
	}
	c.selected--
	if c.selected < -1 {
		c.selected = len(c.candidates) - 1
	}
	c.applySelection(buf)
}

// Reset accepts the buffer's current content and ends the cycle.
func (c *CompletionManager) Reset() {
	c.candidates = nil
	c.selected = -1
	c.insertedLen = 0
	c.original = ""
	c.completing = false
}

func (c *CompletionManager) applySelection(buf *Buffer) {
	text := c.original
	if s, ok := c.Selected(); ok {
		text = s.replacement()
	}
	debug.Assert(buf.CursorPosition() >= c.insertedLen, "completion span exceeds cursor")
	buf.DeleteBeforeCursor(c.insertedLen)
	buf.InsertTextMoveCursor(text)
	c.insertedLen = istrings.RuneCountInString(text)
}
