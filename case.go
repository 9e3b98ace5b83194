package jpnorm

const (
	fullUpperA = 0xff21 // Ａ
	fullUpperZ = 0xff3a // Ｚ
	fullLowerA = 0xff41 // ａ
	fullLowerZ = 0xff5a // ｚ
)

var (
	foldLower = mapRune(func(r rune) (rune, bool) {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A', true
		case r >= fullUpperA && r <= fullUpperZ:
			return r + fullLowerA - fullUpperA, true
		}
		return 0, false
	})

	foldUpper = mapRune(func(r rune) (rune, bool) {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A', true
		case r >= fullLowerA && r <= fullLowerZ:
			return r - fullLowerA + fullUpperA, true
		}
		return 0, false
	})
)

// Transformers for case folding. Only ASCII and fullwidth ASCII letters are
// affected.
var (
	FoldLower = Transformer{foldLower}
	FoldUpper = Transformer{foldUpper}
)

// LowerString lowercases ASCII and fullwidth ASCII letters in str.
func LowerString(str string) string {
	return FoldLower.String(str)
}

// UpperString uppercases ASCII and fullwidth ASCII letters in str.
func UpperString(str string) string {
	return FoldUpper.String(str)
}

// CapitalizeString uppercases the first code point of str and lowercases
// the rest. "ｇｏｏｇｌｅ" becomes "Ｇｏｏｇｌｅ".
func CapitalizeString(str string) string {
	if str == "" {
		return str
	}
	_, size, _ := decodeFirst(str)
	return UpperString(str[:size]) + LowerString(str[size:])
}
