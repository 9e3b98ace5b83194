package jpnorm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScript(t *testing.T) {
	tests := []struct {
		input    string
		expected ScriptType
	}{
		{"", UnknownScript},
		{"京都", Kanji},
		{"モズクﾓｽﾞｸ", Katakana},
		{"ひらがな", Hiragana},
		{"ゔぁいおりん", Hiragana},
		{"カタカナー", Katakana},
		{"ーカタカナ", Katakana},
		{"ー", UnknownScript},
		{"ーー゛", UnknownScript},
		{"ひらがなー", Hiragana},
		{"ひらがなｰ", UnknownScript},
		{"カタカナｰ", Katakana},
		{"ｰ", Katakana},
		{"!グーグル", UnknownScript},
		{"123", Number},
		{"１２３", Number},
		{"0１2", Number},
		{"abc", Alphabet},
		{"ａｂｃ", Alphabet},
		{"漢字かな", UnknownScript},
		{"〇々", Kanji},
		{"𠀋", Kanji},
		{"@!#", UnknownScript},
		{"a\xff", UnknownScript},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyScript(tt.input))
		})
	}
}

func TestIsScript(t *testing.T) {
	for _, script := range []ScriptType{UnknownScript, Katakana, Hiragana, Kanji, Number, Alphabet} {
		assert.False(t, IsScript("", script), "IsScript(\"\", %v)", script)
		assert.False(t, ContainsScript("", script), "ContainsScript(\"\", %v)", script)
	}

	tests := []struct {
		input    string
		script   ScriptType
		expected bool
	}{
		{"カタカナ", Katakana, true},
		{"カタカナー", Katakana, true},
		{"ｶﾀｶﾅ", Katakana, true},
		{"カタカナ", Hiragana, false},
		{"ひらがなー", Hiragana, true},
		{"ひらがなｰ", Hiragana, false},
		{"は゛", Hiragana, true},
		{"ひらカナ", Hiragana, false},
		{"ーー", Katakana, true},
		{"ー", Kanji, false},
		{"漢字", Kanji, true},
		{"漢字ー", Kanji, false},
		{"0123", Number, true},
		{"０１２", Number, true},
		{"abc", Alphabet, true},
		{"abc1", Alphabet, false},
		{"@!#", UnknownScript, true},
		{"\xff", UnknownScript, true},
		{"\xff", Katakana, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsScript(tt.input, tt.script), "IsScript(%q, %v)", tt.input, tt.script)
	}
}

func TestContainsScript(t *testing.T) {
	tests := []struct {
		input    string
		script   ScriptType
		expected bool
	}{
		{"漢字かな", Hiragana, true},
		{"漢字かな", Kanji, true},
		{"漢字かな", Katakana, false},
		{"ー", Katakana, false},
		{"abc1", Number, true},
		{"ｶﾀｶﾅ", Katakana, true},
		{"かな!", UnknownScript, true},
		{"a\xff", UnknownScript, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ContainsScript(tt.input, tt.script), "ContainsScript(%q, %v)", tt.input, tt.script)
	}
}

func TestClassifyForm(t *testing.T) {
	tests := []struct {
		input    string
		expected FormType
	}{
		{"", UnknownForm},
		{"ｶﾀｶﾅ", HalfWidth},
		{"カタカナ", FullWidth},
		{"ひらがな", FullWidth},
		{"abc", HalfWidth},
		{"a b", HalfWidth},
		{"012", HalfWidth},
		{"ａｂｃ", FullWidth},
		{"０１２", FullWidth},
		{"０１２012", UnknownForm},
		{"ｶﾀｶﾅカタカナ", UnknownForm},
		{"漢字　", FullWidth},
		{"é", UnknownForm},
		{"\xff", UnknownForm},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyForm(tt.input))
		})
	}
}

func TestClassifyCharacterSet(t *testing.T) {
	tests := []struct {
		input    string
		expected CharacterSet
	}{
		{"", ASCII},
		{"abc", ASCII},
		{"ｶﾀｶﾅ", JISX0201},
		{"¥‾", JISX0201},
		{"カタカナ", JISX0208},
		{"ｶﾀｶﾅカタカナ", JISX0208},
		{"漢字", JISX0208},
		{"〜−", JISX0208},
		{"あ①", JISX0213},
		{"①", JISX0213},
		{"Ⅰ", JISX0213},
		{"㊤", JISX0213},
		{"ヷ", JISX0213},
		{"𠀋", JISX0213},
		{"剝", JISX0213},
		{"俱", JISX0213},
		{"𩸽", JISX0213},
		{"﨑", JISX0213},
		{"山﨑", JISX0213},
		{"剝がす", JISX0213},
		{"凬", CP932},
		{"髙", CP932},
		{"髙﨑", CP932},
		{"～", JISX0213},
		{"￢", CP932},
		{"￦", UnicodeOnly},
		{"😀", UnicodeOnly},
		{"abc\xff", UnicodeOnly},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCharacterSet(tt.input))
		})
	}
}

func TestKatakanaSymbols(t *testing.T) {
	assert.True(t, IsHalfWidthKatakanaSymbol("｡｢｣､･ｰﾞﾟ"))
	assert.True(t, IsHalfWidthKatakanaSymbol("ｰ"))
	assert.False(t, IsHalfWidthKatakanaSymbol(""))
	assert.False(t, IsHalfWidthKatakanaSymbol("ｰｱ"))
	assert.False(t, IsHalfWidthKatakanaSymbol("。"))

	assert.True(t, IsFullWidthSymbolInHalfWidthKatakana("。「」、・ー゛゜"))
	assert.False(t, IsFullWidthSymbolInHalfWidthKatakana(""))
	assert.False(t, IsFullWidthSymbolInHalfWidthKatakana("ーア"))
	assert.False(t, IsFullWidthSymbolInHalfWidthKatakana("｡"))
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "KATAKANA", Katakana.String())
	assert.Equal(t, "UNKNOWN_SCRIPT", UnknownScript.String())
	assert.Equal(t, "FULL_WIDTH", FullWidth.String())
	assert.Equal(t, "UNKNOWN_FORM", UnknownForm.String())
	assert.Equal(t, "JISX0213", JISX0213.String())
	assert.Equal(t, "UNICODE_ONLY", UnicodeOnly.String())
}

// TestConcurrentUse runs the operations backed by shared encoders and tables
// from several goroutines at once. Run with -race.
func TestConcurrentUse(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, JISX0208, ClassifyCharacterSet("漢字カナ"))
				assert.Equal(t, JISX0213, ClassifyCharacterSet("剝がす"))
				assert.Equal(t, CP932, ClassifyCharacterSet("凬"))
				assert.Equal(t, UnicodeOnly, ClassifyCharacterSet("😀"))
				assert.Equal(t, Katakana, ClassifyScript("モズクﾓｽﾞｸ"))
				assert.Equal(t, "ﾊﾟｿｺﾝ PC", ToHalfWidth("パソコン　ＰＣ"))
				assert.Equal(t, "ガギａｂｃ", ToFullWidth("ｶﾞｷﾞabc"))
				assert.Equal(t, "かたかな", KatakanaToHiragana("カタカナ"))

				_, arabic, err := KanjiToArabic("五百三十四億二千五十三万五百三十二", false)
				assert.NoError(t, err)
				assert.Equal(t, "53420530532", arabic)

				b, err := EncodeShiftJIS("カタカナ")
				if assert.NoError(t, err) {
					str, err := DecodeShiftJIS(b)
					assert.NoError(t, err)
					assert.Equal(t, "カタカナ", str)
				}
			}
		}()
	}
	wg.Wait()
}
