package jpnorm

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseNumeral lexes and accumulates text. It returns the tokens along with
// the value.
func parseNumeral(text string) ([]numeralToken, uint64, error) {
	tokens, err := lexNumeral(text)
	if err != nil {
		return nil, 0, err
	}
	var acc accumulator
	for _, tok := range tokens {
		if err := acc.feed(tok); err != nil {
			return nil, 0, err
		}
	}
	value, ok := acc.result()
	if !ok {
		return nil, 0, overflowAt(tokens[len(tokens)-1])
	}
	return tokens, value, nil
}

// ParseKanjiNumeral returns the value of a numeral written with any mix of
// ASCII digits, fullwidth digits, kanji digits and the units 十 百 千 万 億
// 兆 京. Errors are of type [*ParseError].
func ParseKanjiNumeral(text string) (uint64, error) {
	_, value, err := parseNumeral(text)
	return value, err
}

// KanjiToArabic converts a numeral to its kanji and arabic spellings.
//
// The kanji spelling is text with every ASCII or fullwidth digit respelled
// as a kanji digit; all other glyphs are kept. The arabic spelling is the
// decimal value. With keepLeadingZeros, each leading zero digit of text is
// kept as a "0" in front of it, so "０１２" gives "012" and "00" gives "00".
//
// Text that is empty, contains anything other than digits and units, has
// large units out of order, or exceeds 2^64-1 fails with a [*ParseError].
func KanjiToArabic(text string, keepLeadingZeros bool) (kanji, arabic string, err error) {
	tokens, value, err := parseNumeral(text)
	if err != nil {
		return "", "", err
	}

	var k strings.Builder
	k.Grow(len(text))
	for cp := range Codepoints(text) {
		switch {
		case cp.Rune >= '0' && cp.Rune <= '9':
			k.WriteRune(kanjiDigits[cp.Rune-'0'])
		case cp.Rune >= 0xff10 && cp.Rune <= 0xff19:
			k.WriteRune(kanjiDigits[cp.Rune-0xff10])
		default:
			k.WriteString(text[cp.Start : cp.Start+cp.Len])
		}
	}

	if !keepLeadingZeros {
		return k.String(), strconv.FormatUint(value, 10), nil
	}
	zeros := 0
	for _, tok := range tokens {
		if tok.unit || tok.value != 0 {
			break
		}
		zeros++
	}
	// A zero coefficient of a unit, as in 〇十, adds no digit of its own.
	if zeros == len(tokens) || value == 0 {
		return k.String(), strings.Repeat("0", max(zeros, 1)), nil
	}
	return k.String(), strings.Repeat("0", zeros) + strconv.FormatUint(value, 10), nil
}

// largeUnits are the group units of ToKanji, largest first.
var largeUnits = [...]struct {
	value uint64
	r     rune
}{
	{1e16, '京'},
	{1e12, '兆'},
	{1e8, '億'},
	{1e4, '万'},
}

// ToKanji spells n as a positional kanji numeral: "千八百" for 1800,
// "一万" for 10000 and "〇" for 0. The result parses back to n.
func ToKanji(n uint64) string {
	if n == 0 {
		return string(kanjiDigits[0])
	}
	b := make([]byte, 0, 64)
	for _, u := range largeUnits {
		if g := n / u.value; g != 0 {
			b = appendKanjiGroup(b, g)
			b = utf8.AppendRune(b, u.r)
			n %= u.value
		}
	}
	return string(appendKanjiGroup(b, n))
}

// appendKanjiGroup spells g, which is below 10000, using 千 百 十. A
// coefficient of one is omitted before those units.
func appendKanjiGroup(b []byte, g uint64) []byte {
	small := [...]struct {
		value uint64
		r     rune
	}{{1000, '千'}, {100, '百'}, {10, '十'}}
	for _, u := range small {
		d := g / u.value
		g %= u.value
		if d == 0 {
			continue
		}
		if d > 1 {
			b = utf8.AppendRune(b, kanjiDigits[d])
		}
		b = utf8.AppendRune(b, u.r)
	}
	if g != 0 {
		b = utf8.AppendRune(b, kanjiDigits[g])
	}
	return b
}
