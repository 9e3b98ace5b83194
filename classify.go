package jpnorm

// ClassifyScript returns the single script of str. The prolonged sound mark
// and the voicing marks are skipped. A string mixing two scripts, an empty
// string, and a string made only of skipped marks are all UnknownScript.
func ClassifyScript(str string) ScriptType {
	state := scUnset
	for len(str) > 0 {
		var cp Codepoint
		cp, str = FirstCodepointInString(str)
		state = transitionScriptState(state, cp)
		if state == scMixed {
			return UnknownScript
		}
	}
	return scriptResult(state)
}

// IsScript reports whether str is non-empty and every code point in it has
// the given script. When checking for Hiragana or Katakana, the prolonged
// sound mark and the voicing marks are accepted in place of kana.
func IsScript(str string, script ScriptType) bool {
	if len(str) == 0 {
		return false
	}
	kana := script == Hiragana || script == Katakana
	for cp := range Codepoints(str) {
		if cp.Malformed {
			if script != UnknownScript {
				return false
			}
			continue
		}
		if kana && isScriptWildcard(cp.Rune) {
			continue
		}
		if scriptOf(cp.Rune) != script {
			return false
		}
	}
	return true
}

// ContainsScript reports whether at least one code point of str has the
// given script. The prolonged sound mark and the voicing marks never count.
func ContainsScript(str string, script ScriptType) bool {
	for cp := range Codepoints(str) {
		if cp.Malformed {
			if script == UnknownScript {
				return true
			}
			continue
		}
		if isScriptWildcard(cp.Rune) {
			continue
		}
		if scriptOf(cp.Rune) == script {
			return true
		}
	}
	return false
}

// ClassifyForm returns HalfWidth or FullWidth if every code point of str
// has that form, UnknownForm otherwise. An empty string is UnknownForm.
func ClassifyForm(str string) FormType {
	result := UnknownForm
	for cp := range Codepoints(str) {
		if cp.Malformed {
			return UnknownForm
		}
		form := formOf(cp.Rune)
		if form == UnknownForm || result != UnknownForm && form != result {
			return UnknownForm
		}
		result = form
	}
	return result
}

// ClassifyCharacterSet returns the narrowest character set able to
// represent every code point of str, that is the widest set any single code
// point requires. An empty string is ASCII.
func ClassifyCharacterSet(str string) CharacterSet {
	result := ASCII
	for cp := range Codepoints(str) {
		if cp.Malformed {
			return UnicodeOnly
		}
		if set := charsetOf(cp.Rune); set > result {
			result = set
			if result == UnicodeOnly {
				break
			}
		}
	}
	return result
}

// IsHalfWidthKatakanaSymbol reports whether str is non-empty and consists
// only of the symbols of the half-width katakana block: ｡｢｣､･ｰﾞﾟ.
func IsHalfWidthKatakanaSymbol(str string) bool {
	return allCodepoints(str, func(r rune) bool {
		_, ok := katakanaSymbols[r]
		return ok
	})
}

// IsFullWidthSymbolInHalfWidthKatakana reports whether str is non-empty and
// consists only of full-width counterparts of the half-width katakana
// symbols: 。「」、・ー゛゜.
func IsFullWidthSymbolInHalfWidthKatakana(str string) bool {
	return allCodepoints(str, func(r rune) bool {
		_, ok := katakanaSymbolsFull[r]
		return ok
	})
}

// katakanaSymbols maps the half-width katakana symbols to their full-width
// counterparts, katakanaSymbolsFull the other way round.
var (
	katakanaSymbols = map[rune]rune{
		0xff61: 0x3002, // ｡
		0xff62: 0x300c, // ｢
		0xff63: 0x300d, // ｣
		0xff64: 0x3001, // ､
		0xff65: 0x30fb, // ･
		0xff70: 0x30fc, // ｰ
		0xff9e: 0x309b, // ﾞ
		0xff9f: 0x309c, // ﾟ
	}
	katakanaSymbolsFull = invert(katakanaSymbols)
)

func allCodepoints(str string, accept func(r rune) bool) bool {
	if len(str) == 0 {
		return false
	}
	for cp := range Codepoints(str) {
		if cp.Malformed || !accept(cp.Rune) {
			return false
		}
	}
	return true
}

func invert(m map[rune]rune) map[rune]rune {
	inverted := make(map[rune]rune, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}
