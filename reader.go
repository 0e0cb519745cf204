package readline

// WinSize represents the width and height of the terminal in cells.
type WinSize struct {
	Row uint16
	Col uint16
}

// Default terminal dimensions, used when the real size cannot be
// queried.
const (
	DefRowCount = 24
	DefColCount = 80
)

// Reader is the raw keystroke source for one editing session. Open
// acquires the terminal and switches it into raw mode; Close restores
// the original attributes and must run exactly once for every
// successful Open, on every exit path.
type Reader interface {
	// Open acquires the input device and enters raw mode.
	Open() error
	// Close restores the terminal attributes and releases the device.
	// A restore failure is returned, never swallowed.
	Close() error
	// Read blocks until at least one byte of input is available.
	Read(p []byte) (int, error)
	// GetWinSize returns the terminal dimensions, falling back to
	// DefRowCount and DefColCount when they cannot be determined.
	GetWinSize() *WinSize
}
