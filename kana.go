package jpnorm

import "unicode/utf8"

var (
	hiraganaToKatakana = mapRune(func(r rune) (rune, bool) {
		return r + kanaOffset, isHiragana(r)
	})

	katakanaToHiragana = mapRune(func(r rune) (rune, bool) {
		return r - kanaOffset, isKatakana(r)
	})

	// composeVoicing merges a kana and a following voicing mark into the
	// precomposed voiced kana. Marks that do not combine are kept as is.
	composeVoicing = converter{
		step: func(dst []byte, r, next rune) ([]byte, bool, bool) {
			switch next {
			case voicedSoundMark, semiVoicedSoundMark, combiningVoiced, combiningSemiVoiced:
			default:
				return dst, false, false
			}
			v, ok := voiced(r, next)
			if !ok {
				return dst, false, false
			}
			return utf8.AppendRune(dst, v), true, true
		},
		lookahead: func(r rune) bool {
			return isHiragana(r) || isKatakana(r)
		},
	}
)

// Transformers for kana conversion.
var (
	ToKatakana              = Transformer{hiraganaToKatakana}
	ToHiragana              = Transformer{katakanaToHiragana}
	ComposeVoicedSoundMarks = Transformer{composeVoicing}
)

// HiraganaToKatakana converts hiragana in str to full-width katakana. The
// prolonged sound mark and everything else is kept.
func HiraganaToKatakana(str string) string {
	return ToKatakana.String(str)
}

// KatakanaToHiragana converts full-width katakana in str to hiragana.
// Katakana without a hiragana counterpart (ヷ..ヺ) and half-width katakana
// are kept.
func KatakanaToHiragana(str string) string {
	return ToHiragana.String(str)
}

// NormalizeVoicedSoundMark merges kana followed by a voicing mark, spacing
// (゛゜) or combining (U+3099, U+309A), into the precomposed code point,
// e.g. "う゛" becomes "ゔ".
func NormalizeVoicedSoundMark(str string) string {
	return ComposeVoicedSoundMarks.String(str)
}
