//go:build !windows

// Package term manages the terminal's termios state for raw-mode line
// editing. The original attributes are captured once per process and
// restored through Restore/RestoreFD; a restore failure leaves the
// terminal unusable and is always reported to the caller.
package term

import (
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var (
	saveTermiosOnce sync.Once
	saveTermiosFD   int
	saveTermios     unix.Termios
	saveTermiosErr  error
)

// getOriginalTermios captures the terminal attributes on first use and
// returns a copy, so later mutation cannot corrupt the saved state.
func getOriginalTermios(fd int) (*unix.Termios, error) {
	saveTermiosOnce.Do(func() {
		saveTermiosFD = fd
		var v *unix.Termios
		v, saveTermiosErr = termios.Tcgetattr(uintptr(fd))
		if saveTermiosErr == nil {
			saveTermios = *v
		}
	})
	if saveTermiosErr != nil {
		return nil, saveTermiosErr
	}
	v := saveTermios
	return &v, nil
}

// SetRaw puts the terminal into raw mode: no line buffering, no echo,
// no output post-processing, no signal-generating control characters,
// 8-bit characters, and reads that return as soon as one byte is
// available (VMIN=1, VTIME=0).
func SetRaw(fd int) error {
	n, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}

	n.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	n.Oflag &^= unix.OPOST
	n.Cflag |= unix.CS8
	n.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	n.Cc[unix.VMIN] = 1
	n.Cc[unix.VTIME] = 0

	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, n)
}

// Restore reverts the terminal attributes saved by the first SetRaw,
// using the descriptor they were captured from.
func Restore() error {
	return RestoreFD(saveTermiosFD)
}

// RestoreFD reverts the saved terminal attributes on the given
// descriptor.
func RestoreFD(fd int) error {
	o, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}
	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, o)
}
