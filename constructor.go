package readline

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Option configures an Editor created by New.
type Option func(*Editor) error

// WithHelper attaches a composite helper supplying any subset of the
// capability interfaces.
func WithHelper(h *Helper) Option {
	return func(e *Editor) error {
		if h == nil {
			h = &Helper{}
		}
		e.helper = h
		return nil
	}
}

// WithCompleter attaches a completion capability.
func WithCompleter(c Completer) Option {
	return func(e *Editor) error {
		e.helper.Completer = c
		return nil
	}
}

// WithHighlighter attaches a display-highlighting capability.
func WithHighlighter(h Highlighter) Option {
	return func(e *Editor) error {
		e.helper.Highlighter = h
		return nil
	}
}

// WithHinter attaches an inline-hint capability.
func WithHinter(h Hinter) Option {
	return func(e *Editor) error {
		e.helper.Hinter = h
		return nil
	}
}

// WithValidator attaches an input-validation capability.
func WithValidator(v Validator) Option {
	return func(e *Editor) error {
		e.helper.Validator = v
		return nil
	}
}

// WithHistory replaces the in-memory history, e.g. with a persistent
// implementation.
func WithHistory(h HistoryProvider) Option {
	return func(e *Editor) error {
		e.history = h
		return nil
	}
}

// WithReader replaces the keystroke source.
func WithReader(r Reader) Option {
	return func(e *Editor) error {
		e.reader = r
		return nil
	}
}

// WithWriter replaces the output stream.
func WithWriter(w io.Writer) Option {
	return func(e *Editor) error {
		e.out = w
		return nil
	}
}

// New creates an Editor. It panics on an invalid option, which can
// only arise from a programming error, never from user input.
func New(opts ...Option) *Editor {
	e := &Editor{
		reader:     NewStdinReader(),
		history:    NewHistory(),
		helper:     &Helper{},
		fallbackIn: os.Stdin,
		isTerminal: func(fd uintptr) bool { return isatty.IsTerminal(fd) },
		getEnv:     os.Getenv,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			panic(err)
		}
	}
	return e
}
