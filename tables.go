package jpnorm

// scriptCodePoints maps code point ranges to their ScriptType. ASCII is
// handled in scriptOf and is listed here only for completeness of lookups
// that bypass the fast track.
var scriptCodePoints = [][3]int{
	{0x0030, 0x0039, int(Number)},     // DIGIT ZERO..DIGIT NINE
	{0x0041, 0x005a, int(Alphabet)},   // LATIN CAPITAL LETTER A..Z
	{0x0061, 0x007a, int(Alphabet)},   // LATIN SMALL LETTER A..Z
	{0x3005, 0x3007, int(Kanji)},      // 々..〇
	{0x3041, 0x309f, int(Hiragana)},   // ぁ..ゟ
	{0x30a1, 0x30ff, int(Katakana)},   // ァ..ヿ
	{0x31f0, 0x31ff, int(Katakana)},   // Katakana Phonetic Extensions
	{0x3400, 0x4dbf, int(Kanji)},      // CJK Unified Ideographs Extension A
	{0x4e00, 0x9fff, int(Kanji)},      // CJK Unified Ideographs
	{0xf900, 0xfaff, int(Kanji)},      // CJK Compatibility Ideographs
	{0xff10, 0xff19, int(Number)},     // ０..９
	{0xff21, 0xff3a, int(Alphabet)},   // Ａ..Ｚ
	{0xff41, 0xff5a, int(Alphabet)},   // ａ..ｚ
	{0xff66, 0xff9f, int(Katakana)},   // ｦ..ﾟ
	{0x1b000, 0x1b000, int(Katakana)}, // KATAKANA LETTER ARCHAIC E
	{0x1b001, 0x1b001, int(Hiragana)}, // HIRAGANA LETTER ARCHAIC YE
	{0x20000, 0x2a6df, int(Kanji)},    // CJK Unified Ideographs Extension B
	{0x2a700, 0x2b73f, int(Kanji)},    // Extension C
	{0x2b740, 0x2b81f, int(Kanji)},    // Extension D
	{0x2f800, 0x2fa1f, int(Kanji)},    // CJK Compatibility Ideographs Supplement
}

// formCodePoints maps code point ranges to their FormType, following the
// Narrow/Halfwidth and Wide/Fullwidth classes of UAX #11.
var formCodePoints = [][3]int{
	{0x0020, 0x007e, int(HalfWidth)},   // ASCII
	{0x00a2, 0x00a3, int(HalfWidth)},   // ¢ £
	{0x00a5, 0x00a6, int(HalfWidth)},   // ¥ ¦
	{0x00ac, 0x00ac, int(HalfWidth)},   // ¬
	{0x00af, 0x00af, int(HalfWidth)},   // ¯
	{0x1100, 0x115f, int(FullWidth)},   // Hangul Jamo initials
	{0x20a9, 0x20a9, int(HalfWidth)},   // ₩
	{0x27e6, 0x27ed, int(HalfWidth)},   // Mathematical brackets
	{0x2985, 0x2986, int(HalfWidth)},   // White parentheses
	{0x2e80, 0x303e, int(FullWidth)},   // CJK radicals, symbols and punctuation
	{0x3041, 0x33ff, int(FullWidth)},   // Kana, Bopomofo, CJK compatibility
	{0x3400, 0x4dbf, int(FullWidth)},   // CJK Unified Ideographs Extension A
	{0x4e00, 0x9fff, int(FullWidth)},   // CJK Unified Ideographs
	{0xa000, 0xa4cf, int(FullWidth)},   // Yi
	{0xac00, 0xd7a3, int(FullWidth)},   // Hangul syllables
	{0xf900, 0xfaff, int(FullWidth)},   // CJK Compatibility Ideographs
	{0xfe30, 0xfe4f, int(FullWidth)},   // CJK Compatibility Forms
	{0xff01, 0xff60, int(FullWidth)},   // Fullwidth ASCII and brackets
	{0xff61, 0xffdc, int(HalfWidth)},   // Halfwidth katakana and Hangul
	{0xffe0, 0xffe6, int(FullWidth)},   // Fullwidth symbols
	{0xffe8, 0xffee, int(HalfWidth)},   // Halfwidth symbols
	{0x1b000, 0x1b0ff, int(FullWidth)}, // Kana Supplement
	{0x20000, 0x2fffd, int(FullWidth)}, // Supplementary Ideographic Plane
	{0x30000, 0x3fffd, int(FullWidth)}, // Tertiary Ideographic Plane
}

// charsetOverrides pins code points whose repertoire the EUC-JP and
// Shift_JIS encoders cannot decide. JIS X 0201 is listed in full. The
// JIS X 0208 entries are the standard mappings of 1-1-32 and friends. The
// encoders also put the Microsoft variants of those cells in JIS X 0208.
// JIS X 0213 has three of them as cells of their own (1-2-17, 1-2-18 and
// 1-2-52); the others are only in CP932.
var charsetOverrides = [][3]int{
	{0x00a2, 0x00a3, int(JISX0208)}, // ¢ £
	{0x00a5, 0x00a5, int(JISX0201)}, // ¥
	{0x00ac, 0x00ac, int(JISX0208)}, // ¬
	{0x2016, 0x2016, int(JISX0208)}, // ‖
	{0x203e, 0x203e, int(JISX0201)}, // ‾
	{0x2212, 0x2212, int(JISX0208)}, // −
	{0x2225, 0x2225, int(JISX0213)}, // ∥
	{0x301c, 0x301c, int(JISX0208)}, // 〜
	{0xff0d, 0xff0d, int(JISX0213)}, // －
	{0xff5e, 0xff5e, int(JISX0213)}, // ～
	{0xff61, 0xff9f, int(JISX0201)}, // Halfwidth katakana
	{0xffe0, 0xffe2, int(CP932)},    // ￠ ￡ ￢
}
