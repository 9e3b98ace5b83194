package jpnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTablesSorted checks that every property table is sorted and that its
// ranges do not overlap, which propertySearch relies on.
func TestTablesSorted(t *testing.T) {
	tables := map[string][][3]int{
		"scriptCodePoints":   scriptCodePoints,
		"formCodePoints":     formCodePoints,
		"charsetOverrides":   charsetOverrides,
		"jisx0213CodePoints": jisx0213CodePoints,
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			prev := -1
			for i, entry := range table {
				if entry[0] > entry[1] {
					t.Errorf("entry %d: range %#x..%#x is reversed", i, entry[0], entry[1])
				}
				if entry[0] <= prev {
					t.Errorf("entry %d: range %#x..%#x overlaps or precedes %#x", i, entry[0], entry[1], prev)
				}
				prev = entry[1]
			}
		})
	}
}

// TestJISX0213Table checks that no earlier step of charsetOf claims a
// character of the generated table for a narrower or wider set.
func TestJISX0213Table(t *testing.T) {
	for _, entry := range jisx0213CodePoints {
		for r := rune(entry[0]); r <= rune(entry[1]); r++ {
			if set := charsetOf(r); set != JISX0213 {
				t.Errorf("%U: got %v", r, set)
			}
		}
	}
}

func TestPropertySearch(t *testing.T) {
	entry, ok := propertySearch(scriptCodePoints, 'カ')
	assert.True(t, ok)
	assert.Equal(t, int(Katakana), entry[2])

	entry, ok = propertySearch(scriptCodePoints, 0x1b001)
	assert.True(t, ok)
	assert.Equal(t, int(Hiragana), entry[2])

	_, ok = propertySearch(scriptCodePoints, '!')
	assert.False(t, ok)

	_, ok = propertySearch(nil, 'a')
	assert.False(t, ok)
}

func TestKanaTables(t *testing.T) {
	assert.Len(t, fullToHalfKatakana, len(halfToFullKatakana))
	for base, v := range voicedKatakana {
		assert.Equal(t, [2]rune{base, voicedSoundMark}, unvoicedKatakana[v], "unvoiced %c", v)
	}
	for base, v := range semiVoicedKatakana {
		assert.Equal(t, [2]rune{base, semiVoicedSoundMark}, unvoicedKatakana[v], "unvoiced %c", v)
	}
	for half, full := range katakanaSymbols {
		assert.Equal(t, full, halfToFullKatakana[half-halfKatakanaFirst], "symbol %c", half)
	}
}
