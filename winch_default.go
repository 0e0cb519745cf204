//go:build !unix

package readline

import "os"

// notifyWinch returns a nil channel on platforms without SIGWINCH; a
// nil channel is never ready, so the loop's non-blocking drain is a
// no-op.
func notifyWinch() chan os.Signal { return nil }

func stopWinch(chan os.Signal) {}
