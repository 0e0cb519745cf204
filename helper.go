package readline

import (
	istrings "github.com/readline-go/readline/strings"
)

// Candidate is a single completion candidate. Display is shown to the
// user; Replacement is inserted into the buffer when the candidate is
// chosen. When Replacement is empty, Display is inserted.
type Candidate struct {
	Display     string
	Replacement string
}

func (c Candidate) replacement() string {
	if c.Replacement != "" {
		return c.Replacement
	}
	return c.Display
}

// Completer produces completion candidates for the line at the given
// cursor offset. The returned start offset marks the beginning of the
// text span (start..pos) that a chosen candidate replaces.
type Completer interface {
	Complete(line string, pos istrings.RuneNumber) (istrings.RuneNumber, []Candidate)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(line string, pos istrings.RuneNumber) (istrings.RuneNumber, []Candidate)

func (f CompleterFunc) Complete(line string, pos istrings.RuneNumber) (istrings.RuneNumber, []Candidate) {
	return f(line, pos)
}

// Highlighter transforms text for display only. Implementations must
// not change the visible width of the text; they typically wrap spans
// in ANSI color sequences.
type Highlighter interface {
	HighlightLine(line string, pos istrings.RuneNumber) string
	HighlightPrompt(prompt string) string
	HighlightHint(hint string) string
	HighlightCandidate(candidate string) string
}

// Hinter optionally supplies an inline hint rendered past the cursor.
// It has no effect on the buffer content.
type Hinter interface {
	Hint(line string, pos istrings.RuneNumber) (string, bool)
}

// HinterFunc adapts a function to the Hinter interface.
type HinterFunc func(line string, pos istrings.RuneNumber) (string, bool)

func (f HinterFunc) Hint(line string, pos istrings.RuneNumber) (string, bool) {
	return f(line, pos)
}

// Helper bundles optional capability implementations. A nil field
// falls back to the default behavior: no candidates, identity
// highlighting, no hint, always-valid input. Each method forwards to
// the corresponding field, which is the hand-written rendition of
// interface forwarding for a composite helper object.
type Helper struct {
	Completer   Completer
	Highlighter Highlighter
	Hinter      Hinter
	Validator   Validator
}

var (
	_ Completer   = (*Helper)(nil)
	_ Highlighter = (*Helper)(nil)
	_ Hinter      = (*Helper)(nil)
	_ Validator   = (*Helper)(nil)
)

func (h *Helper) Complete(line string, pos istrings.RuneNumber) (istrings.RuneNumber, []Candidate) {
	if h == nil || h.Completer == nil {
		return pos, nil
	}
	return h.Completer.Complete(line, pos)
}

func (h *Helper) HighlightLine(line string, pos istrings.RuneNumber) string {
	if h == nil || h.Highlighter == nil {
		return line
	}
	return h.Highlighter.HighlightLine(line, pos)
}

func (h *Helper) HighlightPrompt(prompt string) string {
	if h == nil || h.Highlighter == nil {
		return prompt
	}
	return h.Highlighter.HighlightPrompt(prompt)
}

func (h *Helper) HighlightHint(hint string) string {
	if h == nil || h.Highlighter == nil {
		return hint
	}
	return h.Highlighter.HighlightHint(hint)
}

func (h *Helper) HighlightCandidate(candidate string) string {
	if h == nil || h.Highlighter == nil {
		return candidate
	}
	return h.Highlighter.HighlightCandidate(candidate)
}

func (h *Helper) Hint(line string, pos istrings.RuneNumber) (string, bool) {
	if h == nil || h.Hinter == nil {
		return "", false
	}
	return h.Hinter.Hint(line, pos)
}

func (h *Helper) Validate(line string) ValidationResult {
	if h == nil || h.Validator == nil {
		return ValidationResult{}
	}
	return h.Validator.Validate(line)
}

func (h *Helper) ValidateWhileTyping() bool {
	if h == nil || h.Validator == nil {
		return false
	}
	return h.Validator.ValidateWhileTyping()
}
