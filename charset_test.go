package jpnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftJIS(t *testing.T) {
	tests := []struct {
		input    string
		expected []byte
	}{
		{"", []byte{}},
		{"abc", []byte("abc")},
		{"あ", []byte{0x82, 0xa0}},
		{"ｱ", []byte{0xb1}},
		{"漢字", []byte{0x8a, 0xbf, 0x8e, 0x9a}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EncodeShiftJIS(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, append([]byte{}, got...))

			back, err := DecodeShiftJIS(got)
			require.NoError(t, err)
			assert.Equal(t, tt.input, back)
		})
	}

	_, err := EncodeShiftJIS("😀")
	assert.Error(t, err)
}

func TestCharsetOf(t *testing.T) {
	tests := []struct {
		r        rune
		expected CharacterSet
	}{
		{'a', ASCII},
		{'ｱ', JISX0201},
		{'ア', JISX0208},
		{'亜', JISX0208},
		{'∥', JISX0213},
		{'￠', CP932},
		{'①', JISX0213},
		{'ゕ', JISX0213},
		{'😀', UnicodeOnly},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, charsetOf(tt.r), "charsetOf(%U)", tt.r)
	}
}
