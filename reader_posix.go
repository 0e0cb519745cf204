//go:build unix

package readline

import (
	"errors"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/readline-go/readline/term"
)

// PosixReader is the Reader implementation for POSIX environments. It
// reads the controlling terminal directly and configures it through
// the term package. Reads block until a byte is available (VMIN=1,
// VTIME=0); the blocking read is the engine's only suspension point.
type PosixReader struct {
	fd           int
	open         func(string, int, uint32) (int, error)
	close        func(int) error
	read         func(int, []byte) (int, error)
	setRaw       func(int) error
	restoreFD    func(int) error
	ioctlWinsize func(int, uint) (*unix.Winsize, error)
}

func (t *PosixReader) initFuncs() {
	if t.open == nil {
		t.open = syscall.Open
	}
	if t.close == nil {
		t.close = syscall.Close
	}
	if t.read == nil {
		t.read = syscall.Read
	}
	if t.setRaw == nil {
		t.setRaw = term.SetRaw
	}
	if t.restoreFD == nil {
		t.restoreFD = term.RestoreFD
	}
	if t.ioctlWinsize == nil {
		t.ioctlWinsize = unix.IoctlGetWinsize
	}
}

// Open acquires the controlling terminal (falling back to stdin) and
// enters raw mode.
func (t *PosixReader) Open() error {
	t.initFuncs()
	in, err := t.open("/dev/tty", syscall.O_RDONLY, 0)
	if os.IsNotExist(err) {
		in = syscall.Stdin
	} else if err != nil {
		in = syscall.Stdin
	}
	t.fd = in
	if err := t.setRaw(t.fd); err != nil {
		return &TermModeError{Op: "raw", Err: classifyTermErrno(err)}
	}
	return nil
}

// Close restores the saved terminal attributes, then releases the
// descriptor. The restore error wins when both fail.
func (t *PosixReader) Close() error {
	if err := t.restoreFD(t.fd); err != nil {
		_ = t.close(t.fd)
		return &TermModeError{Op: "restore", Err: classifyTermErrno(err)}
	}
	return t.close(t.fd)
}

// Read blocks until at least one byte of input is available.
func (t *PosixReader) Read(buff []byte) (int, error) {
	n, err := t.read(t.fd, buff)
	if err == nil && n == 0 {
		return 0, io.EOF
	}
	return n, err
}

// GetWinSize queries the terminal dimensions, falling back to the
// defaults when the ioctl fails.
func (t *PosixReader) GetWinSize() *WinSize {
	ws, err := t.ioctlWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return &WinSize{Row: DefRowCount, Col: DefColCount}
	}
	return &WinSize{Row: ws.Row, Col: ws.Col}
}

// classifyTermErrno maps the errno of a failed terminal-attribute call
// onto the package's sentinel errors, keeping the underlying cause
// reachable through errors.Is on the sentinel.
func classifyTermErrno(err error) error {
	switch {
	case errors.Is(err, unix.ENOTTY):
		return ErrNotTerminal
	case errors.Is(err, unix.EBADF):
		return ErrBadDescriptor
	}
	return err
}

var _ Reader = &PosixReader{}

// NewStdinReader returns a Reader for the process's terminal.
func NewStdinReader() *PosixReader {
	pr := &PosixReader{}
	pr.initFuncs()
	return pr
}
