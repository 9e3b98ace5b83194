package jpnorm

import (
	"iter"
	"unicode/utf8"
)

// Codepoint is a decoded code point and the byte span it was decoded from.
//
// A Malformed code point stands for a single byte that does not start a
// valid UTF-8 sequence. Its Rune holds the raw byte value and its Len is 1.
// Classifiers treat malformed code points as unknown, transliterators copy
// the byte through unchanged.
type Codepoint struct {
	Rune      rune
	Start     int
	Len       int
	Malformed bool
}

// decodeFirst decodes the first code point of s.
//
// The expected sequence length comes from the leading byte. If fewer bytes
// remain than required, a continuation byte does not match 10xxxxxx, or the
// sequence is overlong, a surrogate or beyond U+10FFFF, the first byte is
// reported on its own as malformed. An empty s returns size 0.
func decodeFirst[T []byte | string](s T) (r rune, size int, malformed bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	b0 := s[0]
	var n int
	switch {
	case b0 < 0x80:
		return rune(b0), 1, false
	case b0&0xe0 == 0xc0:
		n, r = 2, rune(b0&0x1f)
	case b0&0xf0 == 0xe0:
		n, r = 3, rune(b0&0x0f)
	case b0&0xf8 == 0xf0:
		n, r = 4, rune(b0&0x07)
	default:
		return rune(b0), 1, true
	}
	if len(s) < n {
		return rune(b0), 1, true
	}
	for i := 1; i < n; i++ {
		c := s[i]
		if c&0xc0 != 0x80 {
			return rune(b0), 1, true
		}
		r = r<<6 | rune(c&0x3f)
	}
	switch {
	case n == 2 && r < 0x80,
		n == 3 && r < 0x800,
		n == 3 && r >= 0xd800 && r <= 0xdfff,
		n == 4 && (r < 0x10000 || r > utf8.MaxRune):
		return rune(s[0]), 1, true
	}
	return r, n, false
}

// FirstCodepoint returns the first code point found in the given byte slice
// and the rest of the slice after it. Given an empty slice, it returns a zero
// Codepoint with Len 0 and a nil rest.
//
// This function can be called continuously to extract all code points from a
// byte slice. It never reads past the end of b and always advances by at
// least one byte on non-empty input.
func FirstCodepoint(b []byte) (cp Codepoint, rest []byte) {
	if len(b) == 0 {
		return
	}
	r, size, malformed := decodeFirst(b)
	return Codepoint{Rune: r, Len: size, Malformed: malformed}, b[size:]
}

// FirstCodepointInString is like [FirstCodepoint] but its input and outputs
// are strings.
func FirstCodepointInString(str string) (cp Codepoint, rest string) {
	if len(str) == 0 {
		return
	}
	r, size, malformed := decodeFirst(str)
	return Codepoint{Rune: r, Len: size, Malformed: malformed}, str[size:]
}

// Codepoints returns an iterator over the code points of str. Start is the
// byte offset of each code point within str. The sequence may be iterated
// any number of times.
func Codepoints(str string) iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		for pos := 0; pos < len(str); {
			r, size, malformed := decodeFirst(str[pos:])
			if !yield(Codepoint{Rune: r, Start: pos, Len: size, Malformed: malformed}) {
				return
			}
			pos += size
		}
	}
}

// CodepointsOf is like [Codepoints] but iterates over a byte slice.
func CodepointsOf(b []byte) iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		for pos := 0; pos < len(b); {
			r, size, malformed := decodeFirst(b[pos:])
			if !yield(Codepoint{Rune: r, Start: pos, Len: size, Malformed: malformed}) {
				return
			}
			pos += size
		}
	}
}

// CodepointCount returns the number of code points in str. Every malformed
// byte counts as one code point.
func CodepointCount(str string) int {
	var n int
	for len(str) > 0 {
		_, str = FirstCodepointInString(str)
		n++
	}
	return n
}

// Substring returns length code points of str starting at code point start.
// A negative length, or one running past the end, selects everything up to
// the end of str. A start beyond the end returns "".
func Substring(str string, start, length int) string {
	from := len(str)
	to := len(str)
	var i int
	for cp := range Codepoints(str) {
		if i == start {
			from = cp.Start
		}
		if length >= 0 && i == start+length {
			to = cp.Start
			break
		}
		i++
	}
	if from > to {
		return ""
	}
	return str[from:to]
}

const utf8BOM = "\xef\xbb\xbf"

// StripUTF8BOM removes a UTF-8 byte order mark from the start of str.
func StripUTF8BOM(str string) string {
	if len(str) >= len(utf8BOM) && str[:len(utf8BOM)] == utf8BOM {
		return str[len(utf8BOM):]
	}
	return str
}

// IsUTF16BOM reports whether str starts with a UTF-16 byte order mark of
// either endianness.
func IsUTF16BOM(str string) bool {
	if len(str) < 2 {
		return false
	}
	return str[0] == 0xfe && str[1] == 0xff || str[0] == 0xff && str[1] == 0xfe
}
