package jpnorm

import (
	"slices"
	"testing"
	"unicode/utf8"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestCodepoints(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Codepoint
	}{
		{"empty", "", nil},
		{"ascii", "ab", []Codepoint{
			{Rune: 'a', Start: 0, Len: 1},
			{Rune: 'b', Start: 1, Len: 1},
		}},
		{"mixed lengths", "aあ𠀋", []Codepoint{
			{Rune: 'a', Start: 0, Len: 1},
			{Rune: 'あ', Start: 1, Len: 3},
			{Rune: '𠀋', Start: 4, Len: 4},
		}},
		{"invalid leading byte", "a\xffb", []Codepoint{
			{Rune: 'a', Start: 0, Len: 1},
			{Rune: 0xff, Start: 1, Len: 1, Malformed: true},
			{Rune: 'b', Start: 2, Len: 1},
		}},
		{"truncated", "\xe3\x81", []Codepoint{
			{Rune: 0xe3, Start: 0, Len: 1, Malformed: true},
			{Rune: 0x81, Start: 1, Len: 1, Malformed: true},
		}},
		{"bad continuation", "\xe3\x41\x82", []Codepoint{
			{Rune: 0xe3, Start: 0, Len: 1, Malformed: true},
			{Rune: 'A', Start: 1, Len: 1},
			{Rune: 0x82, Start: 2, Len: 1, Malformed: true},
		}},
		{"overlong", "\xc0\xaf", []Codepoint{
			{Rune: 0xc0, Start: 0, Len: 1, Malformed: true},
			{Rune: 0xaf, Start: 1, Len: 1, Malformed: true},
		}},
		{"surrogate", "\xed\xa0\x80", []Codepoint{
			{Rune: 0xed, Start: 0, Len: 1, Malformed: true},
			{Rune: 0xa0, Start: 1, Len: 1, Malformed: true},
			{Rune: 0x80, Start: 2, Len: 1, Malformed: true},
		}},
		{"beyond max rune", "\xf4\x90\x80\x80", []Codepoint{
			{Rune: 0xf4, Start: 0, Len: 1, Malformed: true},
			{Rune: 0x90, Start: 1, Len: 1, Malformed: true},
			{Rune: 0x80, Start: 2, Len: 1, Malformed: true},
			{Rune: 0x80, Start: 3, Len: 1, Malformed: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Codepoints(tt.input))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Codepoints(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			gotBytes := slices.Collect(CodepointsOf([]byte(tt.input)))
			if diff := cmp.Diff(tt.expected, gotBytes); diff != "" {
				t.Errorf("CodepointsOf(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestFirstCodepoint(t *testing.T) {
	b := []byte("ｶﾞ\x80")
	var got []rune
	for len(b) > 0 {
		var cp Codepoint
		cp, b = FirstCodepoint(b)
		got = append(got, cp.Rune)
	}
	assert.Equal(t, []rune{'ｶ', 'ﾞ', 0x80}, got)

	cp, rest := FirstCodepointInString("")
	assert.Zero(t, cp)
	assert.Empty(t, rest)

	cp, rest = FirstCodepointInString("漢字")
	assert.Equal(t, Codepoint{Rune: '漢', Len: 3}, cp)
	assert.Equal(t, "字", rest)
}

func TestCodepointsStopEarly(t *testing.T) {
	var n int
	for range Codepoints("あいうえお") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCodepointCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"あいう", 3},
		{"ｶﾞｷﾞ", 4},
		{"𠀋𠀋", 2},
		{"a\xffb", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CodepointCount(tt.input), "CodepointCount(%q)", tt.input)
	}
}

func TestSubstring(t *testing.T) {
	const src = "あいうえお"
	tests := []struct {
		start, length int
		expected      string
	}{
		{0, 2, "あい"},
		{1, 1, "い"},
		{2, -1, "うえお"},
		{4, 10, "お"},
		{1, 0, ""},
		{5, 1, ""},
		{9, -1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Substring(src, tt.start, tt.length), "Substring(%q, %d, %d)", src, tt.start, tt.length)
	}
	assert.Equal(t, "b\xff", Substring("ab\xffc", 1, 2))
}

func TestBOM(t *testing.T) {
	assert.Equal(t, "abc", StripUTF8BOM("\xef\xbb\xbfabc"))
	assert.Equal(t, "abc", StripUTF8BOM("abc"))
	assert.Equal(t, "\xef\xbbabc", StripUTF8BOM("\xef\xbbabc"))

	assert.True(t, IsUTF16BOM("\xfe\xff"))
	assert.True(t, IsUTF16BOM("\xff\xfeab"))
	assert.False(t, IsUTF16BOM("\xff"))
	assert.False(t, IsUTF16BOM("\xef\xbb\xbf"))
	assert.False(t, IsUTF16BOM(""))
}

func FuzzCodepoints(f *testing.F) {
	f.Add([]byte("aあ𠀋\xff\xe3\x81"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		str, err := c.GetString()
		if err != nil {
			return
		}
		var runes []rune
		pos := 0
		for cp := range Codepoints(str) {
			if cp.Start != pos {
				t.Fatalf("code point at %d, want %d", cp.Start, pos)
			}
			if cp.Len < 1 || cp.Len > utf8.UTFMax || cp.Malformed && cp.Len != 1 {
				t.Fatalf("bad length %d for %+v", cp.Len, cp)
			}
			pos += cp.Len
			runes = append(runes, cp.Rune)
		}
		if pos != len(str) {
			t.Fatalf("consumed %d bytes of %d", pos, len(str))
		}
		if utf8.ValidString(str) {
			if diff := cmp.Diff([]rune(str), runes, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("runes mismatch (-want +got):\n%s", diff)
			}
		}
	})
}
