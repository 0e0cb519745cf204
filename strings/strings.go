// Package strings provides text measurement helpers used by the line
// editor. Counts are expressed in distinct integer types so that byte,
// rune, grapheme and column arithmetic cannot be mixed up accidentally.
package strings

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/exp/constraints"
)

// ByteNumber is an offset or count measured in bytes.
type ByteNumber int

// RuneNumber is an offset or count measured in runes.
type RuneNumber int

// GraphemeNumber is an offset or count measured in grapheme clusters
// (user-perceived characters).
type GraphemeNumber int

// Width is a count of terminal columns.
type Width int

// Len returns the length of the string in bytes.
func Len(s string) ByteNumber {
	return ByteNumber(len(s))
}

// RuneCount returns the number of runes in b.
func RuneCount(b []byte) RuneNumber {
	return RuneNumber(utf8.RuneCount(b))
}

// RuneCountInString returns the number of runes in s.
func RuneCountInString(s string) RuneNumber {
	return RuneNumber(utf8.RuneCountInString(s))
}

// GraphemeCountInString returns the number of grapheme clusters in s.
func GraphemeCountInString(s string) GraphemeNumber {
	return GraphemeNumber(uniseg.GraphemeClusterCount(s))
}

// GetRuneWidth returns the number of terminal columns needed to display
// the given rune.
func GetRuneWidth(r rune) Width {
	return Width(runewidth.RuneWidth(r))
}

// GetWidth returns the number of terminal columns needed to display the
// given string, accounting for grapheme clusters like emoji with
// modifiers or flags which occupy fewer columns than their rune widths
// would suggest.
func GetWidth(s string) Width {
	return Width(uniseg.StringWidth(s))
}

// RuneIndexNthColumn returns the index of the rune that begins at the
// n-th column of the string, clamped to the total rune count.
func RuneIndexNthColumn(s string, n Width) RuneNumber {
	var (
		columns Width
		runes   RuneNumber
	)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		columns += Width(g.Width())
		if columns > n {
			break
		}
		runes += RuneNumber(len(g.Runes()))
	}
	return runes
}

// RuneIndexNthGrapheme returns the index of the rune that begins the
// n-th grapheme cluster, clamped to the total rune count.
func RuneIndexNthGrapheme(s string, n GraphemeNumber) RuneNumber {
	var (
		graphemes GraphemeNumber
		runes     RuneNumber
	)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if graphemes >= n {
			break
		}
		graphemes++
		runes += RuneNumber(len(g.Runes()))
	}
	return runes
}

// Clamp limits x to the inclusive range [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// IndexNotByte returns the index of the first byte in s that is not c,
// or -1 if there is no such byte.
func IndexNotByte(s string, c byte) ByteNumber {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return ByteNumber(i)
		}
	}
	return -1
}

// LastIndexNotByte returns the index of the last byte in s that is not
// c, or -1 if there is no such byte.
func LastIndexNotByte(s string, c byte) ByteNumber {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != c {
			return ByteNumber(i)
		}
	}
	return -1
}

// asciiSet is a 256-bit value, with bits set for each ASCII byte in a
// chars string.
type asciiSet [8]uint32

// makeASCIISet builds a set of the bytes in chars. It reports ok as
// false if chars contains any non-ASCII byte.
func makeASCIISet(chars string) (as asciiSet, ok bool) {
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= utf8.RuneSelf {
			return as, false
		}
		as[c/32] |= 1 << (c % 32)
	}
	return as, true
}

// notContains reports whether c is not inside the set.
func (as *asciiSet) notContains(c byte) bool {
	return (as[c/32] & (1 << (c % 32))) == 0
}

// IndexNotAny returns the index of the first byte in s that is not part
// of chars, or -1 if there is no such byte.
func IndexNotAny(s, chars string) ByteNumber {
	if len(chars) == 0 {
		if len(s) > 0 {
			return 0
		}
		return -1
	}
	if as, ok := makeASCIISet(chars); ok {
		for i := 0; i < len(s); i++ {
			if as.notContains(s[i]) {
				return ByteNumber(i)
			}
		}
		return -1
	}
	for i, r := range s {
		if !strings.ContainsRune(chars, r) {
			return ByteNumber(i)
		}
	}
	return -1
}

// LastIndexNotAny returns the index of the last byte in s that is not
// part of chars, or -1 if there is no such byte.
func LastIndexNotAny(s, chars string) ByteNumber {
	if len(chars) == 0 {
		if len(s) > 0 {
			return ByteNumber(len(s) - 1)
		}
		return -1
	}
	if as, ok := makeASCIISet(chars); ok {
		for i := len(s) - 1; i >= 0; i-- {
			if as.notContains(s[i]) {
				return ByteNumber(i)
			}
		}
		return -1
	}
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		if !strings.ContainsRune(chars, r) {
			return ByteNumber(i)
		}
	}
	return -1
}
