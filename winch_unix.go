//go:build unix

package readline

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyWinch subscribes to terminal-resize signals. The channel is
// drained non-blockingly by the editing loop; resizes are coalesced.
func notifyWinch() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	return ch
}

func stopWinch(ch chan os.Signal) {
	signal.Stop(ch)
}
