package jpnorm

// halfToFullKatakana maps U+FF61..U+FF9F to full-width code points.
var halfToFullKatakana = [halfKatakanaLast - halfKatakanaFirst + 1]rune{
	'。', '「', '」', '、', '・', 'ヲ', 'ァ', 'ィ', // ｡ ｢ ｣ ､ ･ ｦ ｧ ｨ
	'ゥ', 'ェ', 'ォ', 'ャ', 'ュ', 'ョ', 'ッ', 'ー', // ｩ ｪ ｫ ｬ ｭ ｮ ｯ ｰ
	'ア', 'イ', 'ウ', 'エ', 'オ', 'カ', 'キ', 'ク', // ｱ ｲ ｳ ｴ ｵ ｶ ｷ ｸ
	'ケ', 'コ', 'サ', 'シ', 'ス', 'セ', 'ソ', 'タ', // ｹ ｺ ｻ ｼ ｽ ｾ ｿ ﾀ
	'チ', 'ツ', 'テ', 'ト', 'ナ', 'ニ', 'ヌ', 'ネ', // ﾁ ﾂ ﾃ ﾄ ﾅ ﾆ ﾇ ﾈ
	'ノ', 'ハ', 'ヒ', 'フ', 'ヘ', 'ホ', 'マ', 'ミ', // ﾉ ﾊ ﾋ ﾌ ﾍ ﾎ ﾏ ﾐ
	'ム', 'メ', 'モ', 'ヤ', 'ユ', 'ヨ', 'ラ', 'リ', // ﾑ ﾒ ﾓ ﾔ ﾕ ﾖ ﾗ ﾘ
	'ル', 'レ', 'ロ', 'ワ', 'ン', '゛', '゜', // ﾙ ﾚ ﾛ ﾜ ﾝ ﾞ ﾟ
}

// fullToHalfKatakana is the inverse of halfToFullKatakana.
var fullToHalfKatakana = func() map[rune]rune {
	m := make(map[rune]rune, len(halfToFullKatakana))
	for i, full := range halfToFullKatakana {
		m[full] = halfKatakanaFirst + rune(i)
	}
	return m
}()

// voicedKatakana maps full-width katakana to their voiced (dakuten) forms.
var voicedKatakana = map[rune]rune{
	'ウ': 'ヴ',
	'カ': 'ガ', 'キ': 'ギ', 'ク': 'グ', 'ケ': 'ゲ', 'コ': 'ゴ',
	'サ': 'ザ', 'シ': 'ジ', 'ス': 'ズ', 'セ': 'ゼ', 'ソ': 'ゾ',
	'タ': 'ダ', 'チ': 'ヂ', 'ツ': 'ヅ', 'テ': 'デ', 'ト': 'ド',
	'ハ': 'バ', 'ヒ': 'ビ', 'フ': 'ブ', 'ヘ': 'ベ', 'ホ': 'ボ',
	'ワ': 'ヷ', 'ヰ': 'ヸ', 'ヱ': 'ヹ', 'ヲ': 'ヺ',
	'ヽ': 'ヾ',
}

// semiVoicedKatakana maps full-width katakana to their semi-voiced
// (handakuten) forms.
var semiVoicedKatakana = map[rune]rune{
	'ハ': 'パ', 'ヒ': 'ピ', 'フ': 'プ', 'ヘ': 'ペ', 'ホ': 'ポ',
}

// unvoicedKatakana maps voiced and semi-voiced katakana to their base and
// the mark that was added to it.
var unvoicedKatakana = func() map[rune][2]rune {
	m := make(map[rune][2]rune, len(voicedKatakana)+len(semiVoicedKatakana))
	for base, voiced := range voicedKatakana {
		m[voiced] = [2]rune{base, voicedSoundMark}
	}
	for base, semi := range semiVoicedKatakana {
		m[semi] = [2]rune{base, semiVoicedSoundMark}
	}
	return m
}()

// voiced returns the voiced or semi-voiced form of the kana r when followed
// by mark, which may be a spacing, combining or half-width voicing mark.
// Hiragana are voiced through their katakana counterparts.
func voiced(r, mark rune) (rune, bool) {
	var table map[rune]rune
	switch mark {
	case voicedSoundMark, combiningVoiced, halfVoicedSoundMark:
		table = voicedKatakana
	case semiVoicedSoundMark, combiningSemiVoiced, halfSemiVoicedMark:
		table = semiVoicedKatakana
	default:
		return 0, false
	}
	if isHiragana(r) {
		v, ok := table[r+kanaOffset]
		if !ok || !isKatakana(v) {
			return 0, false
		}
		return v - kanaOffset, true
	}
	v, ok := table[r]
	return v, ok
}

// isHiragana reports whether r has a katakana counterpart at kanaOffset,
// isKatakana the reverse. The iteration marks ゝゞ/ヽヾ count.
func isHiragana(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast || r == hiraganaIterationMk || r == hiraganaVoicedIterMk
}

func isKatakana(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast || r == hiraganaIterationMk+kanaOffset || r == hiraganaVoicedIterMk+kanaOffset
}
