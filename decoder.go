package readline

import (
	"io"
	"unicode/utf8"

	"github.com/readline-go/readline/debug"
)

const inputBufferSize = 1024

// keyEvent is one decoded unit of input: either a recognized key or a
// single printable rune (key == NotDefined). Events are produced by
// the decoder and consumed immediately by the editing loop; they are
// never persisted.
type keyEvent struct {
	key Key
	r   rune
}

// decoder converts the raw byte stream from a Reader into keyEvents.
// It buffers whole read chunks so escape sequences and multi-byte
// UTF-8 encodings that arrive in one burst decode as single events.
// Decoding never mutates the buffer and blocks only on the underlying
// byte read.
type decoder struct {
	reader  Reader
	pending []byte
}

func newDecoder(r Reader) *decoder {
	return &decoder{reader: r}
}

// fill reads more input, blocking until at least one byte arrives.
func (d *decoder) fill() error {
	buf := make([]byte, inputBufferSize)
	n, err := d.reader.Read(buf)
	if n > 0 {
		d.pending = append(d.pending, buf[:n]...)
		return nil
	}
	if err != nil {
		return err
	}
	return io.EOF
}

// next decodes exactly one keyEvent, reading more bytes as needed.
func (d *decoder) next() (keyEvent, error) {
	for {
		if len(d.pending) == 0 {
			if err := d.fill(); err != nil {
				return keyEvent{}, err
			}
		}

		if ev, ok := d.decodePending(); ok {
			return ev, nil
		}
		// An incomplete multi-byte encoding: the terminal has sent a
		// lead byte, so the rest follows immediately.
		if err := d.fill(); err != nil {
			if len(d.pending) == 1 && d.pending[0] == 0x1b {
				// ESC with nothing behind it and nothing coming is a
				// real Escape press.
				d.pending = nil
				return keyEvent{key: Escape}, nil
			}
			// Truncated encoding at end of stream; drop it.
			debug.Log("discarding truncated input at EOF")
			d.pending = nil
			return keyEvent{}, err
		}
	}
}

// decodePending attempts to decode one event from the buffered bytes.
// It reports false when the buffer holds only the prefix of a
// multi-byte encoding.
func (d *decoder) decodePending() (keyEvent, bool) {
	if key, size, ok := matchSequence(d.pending); ok {
		if key == Escape {
			return d.decodeEscape()
		}
		d.pending = d.pending[size:]
		return keyEvent{key: key}, true
	}

	// Every byte below 0x20 has a table entry, so anything reaching
	// here is printable input.
	debug.Assert(d.pending[0] >= 0x20, "control byte escaped the decoding table")

	r, size := utf8.DecodeRune(d.pending)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(d.pending) && len(d.pending) < utf8.UTFMax {
			// Possibly a split encoding; wait for more bytes.
			return keyEvent{}, false
		}
		// Genuinely invalid byte; skip it rather than corrupting the
		// buffer with a replacement character.
		d.pending = d.pending[1:]
		return keyEvent{key: Ignore}, true
	}
	d.pending = d.pending[size:]
	return keyEvent{key: NotDefined, r: r}, true
}

// decodeEscape handles a buffered ESC that did not begin a recognized
// sequence of the table. A bare ESC is never decoded from a burst
// boundary: the read may have split an escape sequence, so the decoder
// waits for the following byte and reports the Escape key only when
// the stream ends first. An unrecognized CSI sequence is consumed
// through its final byte and ignored.
func (d *decoder) decodeEscape() (keyEvent, bool) {
	if len(d.pending) == 1 {
		return keyEvent{}, false
	}
	if d.pending[1] == '[' {
		// CSI: parameter bytes 0x30-0x3f, intermediate 0x20-0x2f, then
		// one final byte 0x40-0x7e.
		for i := 2; i < len(d.pending); i++ {
			if d.pending[i] >= 0x40 && d.pending[i] <= 0x7e {
				d.pending = d.pending[i+1:]
				return keyEvent{key: Ignore}, true
			}
		}
		// The burst ended mid-sequence; wait for the rest.
		return keyEvent{}, false
	}
	if d.pending[1] == 'O' && len(d.pending) == 2 {
		// SS3 sequence split across reads; wait for the final byte.
		return keyEvent{}, false
	}
	// ESC plus an unrelated byte (alt-modified key); consume both.
	d.pending = d.pending[2:]
	return keyEvent{key: Ignore}, true
}
