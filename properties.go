package jpnorm

// ScriptType is the writing system a code point belongs to.
type ScriptType int

// Script types. UnknownScript is the zero value and the result for any code
// point not listed in the script table.
const (
	UnknownScript ScriptType = iota
	Katakana
	Hiragana
	Kanji
	Number
	Alphabet
)

// String returns the name of the script type.
func (s ScriptType) String() string {
	switch s {
	case Katakana:
		return "KATAKANA"
	case Hiragana:
		return "HIRAGANA"
	case Kanji:
		return "KANJI"
	case Number:
		return "NUMBER"
	case Alphabet:
		return "ALPHABET"
	default:
		return "UNKNOWN_SCRIPT"
	}
}

// FormType distinguishes half-width from full-width glyphs.
type FormType int

// Form types.
const (
	UnknownForm FormType = iota
	HalfWidth
	FullWidth
)

// String returns the name of the form type.
func (f FormType) String() string {
	switch f {
	case HalfWidth:
		return "HALF_WIDTH"
	case FullWidth:
		return "FULL_WIDTH"
	default:
		return "UNKNOWN_FORM"
	}
}

// CharacterSet is the narrowest legacy repertoire containing a text.
//
// The values are ordered by increasing repertoire breadth, so the character
// set of a string is the maximum over its code points.
type CharacterSet int

// Character sets, narrowest first.
const (
	ASCII CharacterSet = iota
	JISX0201
	JISX0208
	JISX0213
	CP932
	UnicodeOnly
)

// String returns the name of the character set.
func (c CharacterSet) String() string {
	switch c {
	case ASCII:
		return "ASCII"
	case JISX0201:
		return "JISX0201"
	case JISX0208:
		return "JISX0208"
	case JISX0213:
		return "JISX0213"
	case CP932:
		return "CP932"
	default:
		return "UNICODE_ONLY"
	}
}

// Code points that never decide a script on their own. They take the script
// of the kana around them.
const (
	prolongedSoundMark   = 0x30fc // ー
	combiningVoiced      = 0x3099
	combiningSemiVoiced  = 0x309a
	voicedSoundMark      = 0x309b // ゛
	semiVoicedSoundMark  = 0x309c // ゜
	halfVoicedSoundMark  = 0xff9e // ﾞ
	halfSemiVoicedMark   = 0xff9f // ﾟ
	ideographicSpace     = 0x3000
	halfKatakanaFirst    = 0xff61
	halfKatakanaLast     = 0xff9f
	fullASCIIFirst       = 0xff01
	fullASCIILast        = 0xff5e
	hiraganaFirst        = 0x3041
	hiraganaLast         = 0x3096
	katakanaFirst        = 0x30a1
	katakanaLast         = 0x30f6
	hiraganaIterationMk  = 0x309d // ゝ
	hiraganaVoicedIterMk = 0x309e // ゞ
	kanaOffset           = katakanaFirst - hiraganaFirst
)

// isScriptWildcard reports whether r is excluded from script decisions.
// The half-width marks ｰ ﾞ ﾟ are not wildcards: they are half-width
// katakana and count as Katakana.
func isScriptWildcard(r rune) bool {
	switch r {
	case prolongedSoundMark, voicedSoundMark, semiVoicedSoundMark, combiningVoiced, combiningSemiVoiced:
		return true
	}
	return false
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry and true, or a zero entry and false.
func propertySearch(dictionary [][3]int, r rune) (result [3]int, ok bool) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange, true
	}
	return
}

// scriptOf returns the script of r while fast tracking ASCII.
func scriptOf(r rune) ScriptType {
	switch {
	case r >= '0' && r <= '9':
		return Number
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return Alphabet
	case r < 0x80:
		return UnknownScript
	}
	entry, _ := propertySearch(scriptCodePoints, r)
	return ScriptType(entry[2])
}

// formOf returns the form of r while fast tracking printable ASCII.
func formOf(r rune) FormType {
	if r >= 0x20 && r <= 0x7e {
		return HalfWidth
	}
	entry, _ := propertySearch(formCodePoints, r)
	return FormType(entry[2])
}
