package jpnorm

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// noNext is passed to a step function when no code point follows.
const noNext rune = -1

// A converter maps code points one at a time.
//
// step appends the replacement of r to dst and reports ok, or reports !ok
// if it has no mapping for r. next is the code point after r, or noNext; it
// is only looked up when lookahead reports true for r. usedNext reports
// whether the replacement also covers next.
type converter struct {
	step      func(dst []byte, r, next rune) (out []byte, usedNext, ok bool)
	lookahead func(r rune) bool
}

// Transformer implements the [transform.Transformer] interface for the
// conversions of this package. Unmapped code points and malformed bytes
// pass through unchanged. The zero value maps nothing and copies its input.
type Transformer struct {
	c converter
}

// Reset implements the [transform.Transformer] interface.
func (t Transformer) Reset() {}

// Transform implements the [transform.Transformer] interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [2 * utf8.UTFMax]byte
	for nSrc < len(src) {
		head := src[nSrc:]
		r, size, malformed := decodeFirst(head)
		if malformed {
			if !atEOF && !utf8.FullRune(head) {
				err = transform.ErrShortSrc
				break
			}
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = head[0]
			nDst++
			nSrc++
			continue
		}

		next, nextSize := noNext, 0
		if t.c.lookahead != nil && t.c.lookahead(r) {
			rest := head[size:]
			if !atEOF && (len(rest) == 0 || !utf8.FullRune(rest)) {
				err = transform.ErrShortSrc
				break
			}
			if nr, ns, bad := decodeFirst(rest); ns > 0 && !bad {
				next, nextSize = nr, ns
			}
		}

		var (
			out      []byte
			usedNext bool
			ok       bool
		)
		if t.c.step != nil {
			out, usedNext, ok = t.c.step(buf[:0], r, next)
		}
		if !ok {
			out, usedNext = head[:size], false
		}
		if nDst+len(out) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
		if usedNext {
			nSrc += nextSize
		}
	}
	return
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	out, _, _ := transform.Bytes(t, b)
	return out
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	out, _, _ := transform.String(t, s)
	return out
}

// chain returns a converter that uses the first of converters with a
// mapping for the code point at hand.
func chain(converters ...converter) converter {
	return converter{
		step: func(dst []byte, r, next rune) ([]byte, bool, bool) {
			for _, c := range converters {
				n := next
				if c.lookahead == nil || !c.lookahead(r) {
					n = noNext
				}
				if out, usedNext, ok := c.step(dst, r, n); ok {
					return out, usedNext, true
				}
			}
			return dst, false, false
		},
		lookahead: func(r rune) bool {
			for _, c := range converters {
				if c.lookahead != nil && c.lookahead(r) {
					return true
				}
			}
			return false
		},
	}
}

// mapRune returns a converter for a one-to-one mapping. f returns the
// replacement of r and whether there is one.
func mapRune(f func(r rune) (rune, bool)) converter {
	return converter{
		step: func(dst []byte, r, _ rune) ([]byte, bool, bool) {
			to, ok := f(r)
			if !ok {
				return dst, false, false
			}
			return utf8.AppendRune(dst, to), false, true
		},
	}
}
