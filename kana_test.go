package jpnorm

import (
	"strings"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/stretchr/testify/assert"
)

func TestHiraganaToKatakana(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ひらがなー", "ヒラガナー"},
		{"ぁぃぅゔゕゖ", "ァィゥヴヵヶ"},
		{"ゝゞ", "ヽヾ"},
		{"漢字とかな", "漢字トカナ"},
		{"ｶﾀｶﾅ", "ｶﾀｶﾅ"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, HiraganaToKatakana(tt.input))
		})
	}
}

func TestKatakanaToHiragana(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"カタカナー", "かたかなー"},
		{"ヴァイオリン", "ゔぁいおりん"},
		{"ヵヶヽヾ", "ゕゖゝゞ"},
		{"ヷヸヹヺ", "ヷヸヹヺ"},
		{"・", "・"},
		{"ｶﾀｶﾅ", "ｶﾀｶﾅ"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, KatakanaToHiragana(tt.input))
		})
	}
}

func TestKanaRoundTrip(t *testing.T) {
	for _, s := range []string{"アイウエオー", "ヴァイオリン", "ヵヶヽヾ", "ーー", "ヷ"} {
		assert.Equal(t, s, HiraganaToKatakana(KatakanaToHiragana(s)), s)
	}
}

func TestNormalizeVoicedSoundMark(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"う゛", "ゔ"},
		{"か゛き゛", "がぎ"},
		{"は゜", "ぱ"},
		{"ガ", "ガ"},
		{"パ", "パ"},
		{"ウ゛", "ヴ"},
		{"ワ゛", "ヷ"},
		{"ゝ゛", "ゞ"},
		{"わ゛", "わ゛"},
		{"あ゛", "あ゛"},
		{"か゜", "か゜"},
		{"゛", "゛"},
		{"ｶﾞ", "ｶﾞ"},
		{"かﾞ", "かﾞ"},
		{"漢゛", "漢゛"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeVoicedSoundMark(tt.input))
		})
	}
}

func FuzzKanaRoundTrip(f *testing.F) {
	f.Add([]byte("カタカナー"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		seed, err := c.GetString()
		if err != nil {
			return
		}
		// Fold arbitrary input into katakana and the prolonged sound mark.
		var b strings.Builder
		for cp := range Codepoints(seed) {
			if cp.Rune%16 == 0 {
				b.WriteRune(prolongedSoundMark)
				continue
			}
			b.WriteRune(katakanaFirst + cp.Rune%(katakanaLast-katakanaFirst+1))
		}
		s := b.String()
		if got := HiraganaToKatakana(KatakanaToHiragana(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	})
}
