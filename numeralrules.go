package jpnorm

import "math/bits"

// A numeralToken is either a digit or a unit multiplier, in source order.
type numeralToken struct {
	unit   bool
	value  uint64 // 0..9 for digits, a power of ten for units
	offset int
	r      rune
}

// numeralGlyph describes a code point that may appear in a numeral. A glyph
// with both digit and unit set stands for the two tokens digit, unit (廿 is
// 二十).
type numeralGlyph struct {
	digit    uint64
	unit     uint64
	hasDigit bool
}

var numeralGlyphs = func() map[rune]numeralGlyph {
	m := make(map[rune]numeralGlyph)
	digits := [10]string{
		"〇零", "一壱壹弌", "二弐貳弍", "三参參弎", "四肆",
		"五伍", "六陸", "七漆", "八捌", "九玖",
	}
	for d, glyphs := range digits {
		for _, r := range glyphs {
			m[r] = numeralGlyph{digit: uint64(d), hasDigit: true}
		}
		m['0'+rune(d)] = numeralGlyph{digit: uint64(d), hasDigit: true}
		m[0xff10+rune(d)] = numeralGlyph{digit: uint64(d), hasDigit: true}
	}
	units := []struct {
		glyphs string
		value  uint64
	}{
		{"十拾什", 1e1},
		{"百佰陌", 1e2},
		{"千仟阡", 1e3},
		{"万萬", 1e4},
		{"億", 1e8},
		{"兆", 1e12},
		{"京", 1e16},
	}
	for _, u := range units {
		for _, r := range u.glyphs {
			m[r] = numeralGlyph{unit: u.value}
		}
	}
	m['廿'] = numeralGlyph{digit: 2, unit: 10, hasDigit: true}
	m['卅'] = numeralGlyph{digit: 3, unit: 10, hasDigit: true}
	m['卌'] = numeralGlyph{digit: 4, unit: 10, hasDigit: true}
	return m
}()

// kanjiDigits spells the digits 0..9.
var kanjiDigits = [10]rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'}

// largeUnit is the smallest unit that scales between groups.
const largeUnit = 1e4

// lexNumeral splits text into numeral tokens. It fails on the first code
// point that is neither a digit nor a unit.
func lexNumeral(text string) ([]numeralToken, error) {
	var tokens []numeralToken
	for cp := range Codepoints(text) {
		g, ok := numeralGlyphs[cp.Rune]
		if !ok || cp.Malformed {
			return nil, &ParseError{Kind: InvalidToken, Offset: cp.Start, Rune: cp.Rune}
		}
		if g.hasDigit {
			tokens = append(tokens, numeralToken{value: g.digit, offset: cp.Start, r: cp.Rune})
		}
		if g.unit != 0 {
			tokens = append(tokens, numeralToken{unit: true, value: g.unit, offset: cp.Start, r: cp.Rune})
		}
	}
	if len(tokens) == 0 {
		return nil, &ParseError{Kind: Empty}
	}
	return tokens, nil
}

// accumulator folds numeral tokens into a value.
//
// run collects digits since the last unit by concatenation ("二三五" is
// 235). A small unit (十, 百, 千) multiplies run, or 1 when no digit
// preceded it, into group. A large unit (万, 億, 兆, 京) multiplies group
// plus run, or 1 when the group is empty, into total. Within a group small
// units must strictly decrease, and large units must strictly decrease
// across the whole numeral.
type accumulator struct {
	total, group, run    uint64
	runSet, groupSet     bool
	lastSmall, lastLarge uint64
}

// feed applies one token to the accumulator.
func (a *accumulator) feed(tok numeralToken) error {
	switch {
	case !tok.unit:
		v, ok := mulAdd(a.run, 10, tok.value)
		if !ok {
			return overflowAt(tok)
		}
		a.run, a.runSet = v, true
	case tok.value < largeUnit:
		if a.lastSmall != 0 && tok.value >= a.lastSmall {
			return &ParseError{Kind: OutOfOrderUnit, Offset: tok.offset, Rune: tok.r}
		}
		coef := a.run
		if !a.runSet {
			coef = 1
		}
		v, ok := mulAdd(coef, tok.value, a.group)
		if !ok {
			return overflowAt(tok)
		}
		a.group, a.groupSet = v, true
		a.run, a.runSet = 0, false
		a.lastSmall = tok.value
	default:
		if a.lastLarge != 0 && tok.value >= a.lastLarge {
			return &ParseError{Kind: OutOfOrderUnit, Offset: tok.offset, Rune: tok.r}
		}
		coef, carry := bits.Add64(a.group, a.run, 0)
		if carry != 0 {
			return overflowAt(tok)
		}
		if !a.groupSet && !a.runSet {
			coef = 1
		}
		v, ok := mulAdd(coef, tok.value, a.total)
		if !ok {
			return overflowAt(tok)
		}
		a.total = v
		a.group, a.groupSet = 0, false
		a.run, a.runSet = 0, false
		a.lastSmall = 0
		a.lastLarge = tok.value
	}
	return nil
}

// result folds the pending group and run into the total.
func (a *accumulator) result() (uint64, bool) {
	v, carry := bits.Add64(a.total, a.group, 0)
	if carry != 0 {
		return 0, false
	}
	v, carry = bits.Add64(v, a.run, 0)
	return v, carry == 0
}

// mulAdd returns x*y+z and whether it fits in a uint64.
func mulAdd(x, y, z uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(lo, z, 0)
	return sum, carry == 0
}

func overflowAt(tok numeralToken) error {
	return &ParseError{Kind: Overflow, Offset: tok.offset, Rune: tok.r}
}
