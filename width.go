package jpnorm

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	// widenASCII maps ASCII to fullwidth ASCII. The space is left alone.
	widenASCII = mapRune(func(r rune) (rune, bool) {
		if r <= ' ' || r > '~' {
			return 0, false
		}
		wide := width.LookupRune(r).Wide()
		return wide, wide != 0
	})

	// narrowASCII maps fullwidth ASCII to ASCII. The ideographic space is
	// left alone.
	narrowASCII = mapRune(func(r rune) (rune, bool) {
		if r < fullASCIIFirst || r > fullASCIILast {
			return 0, false
		}
		narrow := width.LookupRune(r).Narrow()
		return narrow, narrow != 0
	})

	widenSpace = mapRune(func(r rune) (rune, bool) {
		return ideographicSpace, r == ' '
	})

	narrowSpace = mapRune(func(r rune) (rune, bool) {
		return ' ', r == ideographicSpace
	})

	// widenKatakana maps half-width katakana to full-width katakana. A base
	// followed by ﾞ or ﾟ becomes the precomposed voiced form if there is one.
	widenKatakana = converter{
		step: func(dst []byte, r, next rune) ([]byte, bool, bool) {
			if r < halfKatakanaFirst || r > halfKatakanaLast {
				return dst, false, false
			}
			full := halfToFullKatakana[r-halfKatakanaFirst]
			if v, ok := voiced(full, next); ok {
				return utf8.AppendRune(dst, v), true, true
			}
			return utf8.AppendRune(dst, full), false, true
		},
		lookahead: func(r rune) bool {
			return r >= halfKatakanaFirst && r < halfVoicedSoundMark
		},
	}

	// narrowKatakana maps full-width katakana and the kana symbols to their
	// half-width forms, splitting voiced katakana into base and mark.
	narrowKatakana = converter{
		step: func(dst []byte, r, _ rune) ([]byte, bool, bool) {
			if half, ok := fullToHalfKatakana[r]; ok {
				return utf8.AppendRune(dst, half), false, true
			}
			parts, ok := unvoicedKatakana[r]
			if !ok {
				return dst, false, false
			}
			base, baseOK := fullToHalfKatakana[parts[0]]
			mark := fullToHalfKatakana[parts[1]]
			if !baseOK {
				return dst, false, false
			}
			dst = utf8.AppendRune(dst, base)
			return utf8.AppendRune(dst, mark), false, true
		},
	}
)

// Transformers for width conversion. Widen and Narrow convert ASCII, the
// space and katakana together; the other transformers each cover one class.
var (
	Widen          = Transformer{chain(widenASCII, widenSpace, widenKatakana)}
	Narrow         = Transformer{chain(narrowASCII, narrowSpace, narrowKatakana)}
	WidenASCII     = Transformer{widenASCII}
	NarrowASCII    = Transformer{narrowASCII}
	WidenKatakana  = Transformer{widenKatakana}
	NarrowKatakana = Transformer{narrowKatakana}
)

// ToFullWidth converts ASCII, the space and half-width katakana in str to
// their full-width forms.
func ToFullWidth(str string) string {
	return Widen.String(str)
}

// ToHalfWidth converts fullwidth ASCII, the ideographic space and full-width
// katakana in str to their half-width forms.
func ToHalfWidth(str string) string {
	return Narrow.String(str)
}

// ToFullWidthASCII converts printable ASCII other than the space to
// fullwidth ASCII.
func ToFullWidthASCII(str string) string {
	return WidenASCII.String(str)
}

// ToHalfWidthASCII converts fullwidth ASCII to ASCII. The ideographic space
// is kept.
func ToHalfWidthASCII(str string) string {
	return NarrowASCII.String(str)
}

// ToFullWidthKatakana converts half-width katakana to full-width katakana.
func ToFullWidthKatakana(str string) string {
	return WidenKatakana.String(str)
}

// ToHalfWidthKatakana converts full-width katakana to half-width katakana.
func ToHalfWidthKatakana(str string) string {
	return NarrowKatakana.String(str)
}
