//go:build windows

package readline

import (
	"unicode/utf8"

	tty "github.com/mattn/go-tty"
)

// WindowsReader is the Reader implementation for the Win32 console,
// backed by go-tty which handles console-mode switching itself.
type WindowsReader struct {
	tty *tty.TTY
}

// Open acquires the console and enters raw mode.
func (p *WindowsReader) Open() error {
	t, err := tty.Open()
	if err != nil {
		return &TermModeError{Op: "raw", Err: err}
	}
	p.tty = t
	return nil
}

// Close restores the console mode and releases the device.
func (p *WindowsReader) Close() error {
	if p.tty == nil {
		return nil
	}
	err := p.tty.Close()
	p.tty = nil
	if err != nil {
		return &TermModeError{Op: "restore", Err: err}
	}
	return nil
}

// Read blocks until at least one rune of input is available, then
// drains whatever else is already buffered.
func (p *WindowsReader) Read(buff []byte) (int, error) {
	r, err := p.tty.ReadRune()
	if err != nil {
		return 0, err
	}
	n := utf8.EncodeRune(buff[:], r)
	for p.tty.Buffered() && n+utf8.UTFMax <= len(buff) {
		r, err := p.tty.ReadRune()
		if err != nil {
			break
		}
		n += utf8.EncodeRune(buff[n:], r)
	}
	return n, nil
}

// GetWinSize returns the console dimensions, falling back to the
// defaults when they cannot be determined.
func (p *WindowsReader) GetWinSize() *WinSize {
	w, h, err := p.tty.Size()
	if err != nil {
		return &WinSize{Row: DefRowCount, Col: DefColCount}
	}
	return &WinSize{Row: uint16(h), Col: uint16(w)}
}

var _ Reader = &WindowsReader{}

// NewStdinReader returns a Reader for the process's console.
func NewStdinReader() *WindowsReader {
	return &WindowsReader{}
}
