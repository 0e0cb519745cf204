package readline

import "bytes"

//go:generate go tool stringer -type=Key

// Key is a logical key decoded from the raw input byte stream.
type Key int

const (
	Escape Key = iota

	ControlA
	ControlB
	ControlC
	ControlD
	ControlE
	ControlF
	ControlG
	ControlH
	ControlI
	ControlJ
	ControlK
	ControlL
	ControlM
	ControlN
	ControlO
	ControlP
	ControlQ
	ControlR
	ControlS
	ControlT
	ControlU
	ControlV
	ControlW
	ControlX
	ControlY
	ControlZ

	ControlSpace
	ControlBackslash
	ControlSquareClose
	ControlCircumflex
	ControlUnderscore

	Up
	Down
	Right
	Left

	Home
	End
	Delete
	PageUp
	PageDown
	Insert

	Tab
	BackTab
	Enter
	Backspace

	// Ignore is a recognized sequence that deliberately does nothing.
	Ignore
	// NotDefined is returned for bytes that do not match any sequence;
	// such bytes are treated as printable input.
	NotDefined
)

// ASCIICode pairs a logical key with the raw byte sequence that
// produces it.
type ASCIICode struct {
	Key       Key
	ASCIICode []byte
}

// ASCIISequences is the fixed decoding table. It is never mutated at
// runtime. It is sorted from longest to shortest sequence so that
// prefix matching always finds the most specific match first; the bare
// ESC byte in particular must come after every multi-byte escape
// sequence it prefixes.
var ASCIISequences = []*ASCIICode{
	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x7e}},     // ESC [ 1 ~
	{Key: Insert, ASCIICode: []byte{0x1b, 0x5b, 0x32, 0x7e}},   // ESC [ 2 ~
	{Key: Delete, ASCIICode: []byte{0x1b, 0x5b, 0x33, 0x7e}},   // ESC [ 3 ~
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x34, 0x7e}},      // ESC [ 4 ~
	{Key: PageUp, ASCIICode: []byte{0x1b, 0x5b, 0x35, 0x7e}},   // ESC [ 5 ~
	{Key: PageDown, ASCIICode: []byte{0x1b, 0x5b, 0x36, 0x7e}}, // ESC [ 6 ~
	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x37, 0x7e}},     // ESC [ 7 ~
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x38, 0x7e}},      // ESC [ 8 ~

	{Key: Up, ASCIICode: []byte{0x1b, 0x5b, 0x41}},    // ESC [ A
	{Key: Down, ASCIICode: []byte{0x1b, 0x5b, 0x42}},  // ESC [ B
	{Key: Right, ASCIICode: []byte{0x1b, 0x5b, 0x43}}, // ESC [ C
	{Key: Left, ASCIICode: []byte{0x1b, 0x5b, 0x44}},  // ESC [ D
	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x48}},  // ESC [ H
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x46}},   // ESC [ F
	{Key: BackTab, ASCIICode: []byte{0x1b, 0x5b, 0x5a}},
	{Key: Up, ASCIICode: []byte{0x1b, 0x4f, 0x41}},    // ESC O A
	{Key: Down, ASCIICode: []byte{0x1b, 0x4f, 0x42}},  // ESC O B
	{Key: Right, ASCIICode: []byte{0x1b, 0x4f, 0x43}}, // ESC O C
	{Key: Left, ASCIICode: []byte{0x1b, 0x4f, 0x44}},  // ESC O D
	{Key: Home, ASCIICode: []byte{0x1b, 0x4f, 0x48}},  // ESC O H
	{Key: End, ASCIICode: []byte{0x1b, 0x4f, 0x46}},   // ESC O F

	{Key: ControlSpace, ASCIICode: []byte{0x00}},
	{Key: ControlA, ASCIICode: []byte{0x1}},
	{Key: ControlB, ASCIICode: []byte{0x2}},
	{Key: ControlC, ASCIICode: []byte{0x3}},
	{Key: ControlD, ASCIICode: []byte{0x4}},
	{Key: ControlE, ASCIICode: []byte{0x5}},
	{Key: ControlF, ASCIICode: []byte{0x6}},
	{Key: ControlG, ASCIICode: []byte{0x7}},
	{Key: ControlH, ASCIICode: []byte{0x8}},
	{Key: Tab, ASCIICode: []byte{0x9}},
	{Key: ControlJ, ASCIICode: []byte{0xa}},
	{Key: ControlK, ASCIICode: []byte{0xb}},
	{Key: ControlL, ASCIICode: []byte{0xc}},
	{Key: Enter, ASCIICode: []byte{0xd}},
	{Key: ControlN, ASCIICode: []byte{0xe}},
	{Key: ControlO, ASCIICode: []byte{0xf}},
	{Key: ControlP, ASCIICode: []byte{0x10}},
	{Key: ControlQ, ASCIICode: []byte{0x11}},
	{Key: ControlR, ASCIICode: []byte{0x12}},
	{Key: ControlS, ASCIICode: []byte{0x13}},
	{Key: ControlT, ASCIICode: []byte{0x14}},
	{Key: ControlU, ASCIICode: []byte{0x15}},
	{Key: ControlV, ASCIICode: []byte{0x16}},
	{Key: ControlW, ASCIICode: []byte{0x17}},
	{Key: ControlX, ASCIICode: []byte{0x18}},
	{Key: ControlY, ASCIICode: []byte{0x19}},
	{Key: ControlZ, ASCIICode: []byte{0x1a}},
	{Key: Escape, ASCIICode: []byte{0x1b}},
	{Key: ControlBackslash, ASCIICode: []byte{0x1c}},
	{Key: ControlSquareClose, ASCIICode: []byte{0x1d}},
	{Key: ControlCircumflex, ASCIICode: []byte{0x1e}},
	{Key: ControlUnderscore, ASCIICode: []byte{0x1f}},
	{Key: Backspace, ASCIICode: []byte{0x7f}},
}

// GetKey returns the Key that exactly matches the given bytes, or
// NotDefined.
func GetKey(b []byte) Key {
	for _, k := range ASCIISequences {
		if bytes.Equal(k.ASCIICode, b) {
			return k.Key
		}
	}
	return NotDefined
}

// matchSequence matches the front of pending against the decoding
// table. The table's longest-first ordering guarantees the first
// prefix match is the most specific one. It reports ok=false when no
// recognized sequence starts at pending[0].
func matchSequence(pending []byte) (key Key, size int, ok bool) {
	for _, k := range ASCIISequences {
		if bytes.HasPrefix(pending, k.ASCIICode) {
			return k.Key, len(k.ASCIICode), true
		}
	}
	return NotDefined, 0, false
}
