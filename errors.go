package readline

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupt is returned when the user aborts the read with the
	// interrupt command (Control-C). Validation is skipped.
	ErrInterrupt = errors.New("readline: interrupt")

	// ErrEOF is returned when input ends with nothing to submit:
	// Control-D on an empty buffer, or the input stream closing.
	ErrEOF = errors.New("readline: end of file")

	// ErrNotTerminal is returned when raw mode is requested but
	// standard input is not an interactive terminal.
	ErrNotTerminal = errors.New("readline: not a terminal")

	// ErrBadDescriptor is returned when the terminal descriptor is
	// unusable for attribute retrieval.
	ErrBadDescriptor = errors.New("readline: bad file descriptor")
)

// TermModeError reports a failure to enter or restore the terminal's
// raw mode. A restore failure is surfaced even when the read itself
// succeeded, because it means the terminal was left misconfigured.
type TermModeError struct {
	Op  string // "raw" or "restore"
	Err error
}

func (e *TermModeError) Error() string {
	return fmt.Sprintf("readline: set terminal mode (%s): %v", e.Op, e.Err)
}

func (e *TermModeError) Unwrap() error { return e.Err }
