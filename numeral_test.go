package jpnorm

import (
	"errors"
	"math"
	"strconv"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	maxUint64Kanji = "千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十五"
	overflowKanji  = "千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十六"
)

func TestKanjiToArabic(t *testing.T) {
	tests := []struct {
		input            string
		keepLeadingZeros bool
		kanji            string
		arabic           string
	}{
		{"一万二十五", false, "一万二十五", "10025"},
		{"千", false, "千", "1000"},
		{"十五", false, "十五", "15"},
		{"拾", false, "拾", "10"},
		{"拾四", false, "拾四", "14"},
		{"廿万廿", false, "廿万廿", "200020"},
		{"四十五", false, "四十五", "45"},
		{"五百三十四億二千五十三万五百三十二", false, "五百三十四億二千五十三万五百三十二", "53420530532"},
		{"一千京", false, "一千京", "10000000000000000000"},
		{maxUint64Kanji, false, maxUint64Kanji, "18446744073709551615"},
		{"2十5", false, "二十五", "25"},
		{"二三五", false, "二三五", "235"},
		{"二三五万四三", false, "二三五万四三", "2350043"},
		{"二百三五万一", false, "二百三五万一", "2350001"},
		{"2千四十３", false, "二千四十三", "2043"},
		{"弐拾参", false, "弐拾参", "23"},
		{"零弐拾参", false, "零弐拾参", "23"},
		{"萬", false, "萬", "10000"},
		{"０１２", false, "〇一二", "12"},
		{"０１２", true, "〇一二", "012"},
		{"０00", true, "〇〇〇", "000"},
		{"００１２", true, "〇〇一二", "0012"},
		{"０零０１２", true, "〇零〇一二", "00012"},
		{"0", false, "〇", "0"},
		{"00", false, "〇〇", "0"},
		{"0", true, "〇", "0"},
		{"00", true, "〇〇", "00"},
		{"〇十", true, "〇十", "0"},
		{"〇十", false, "〇十", "0"},
		{"零万", true, "零万", "0"},
		{"〇〇万", true, "〇〇万", "00"},
		{"〇一十", true, "〇一十", "010"},
		{"18446744073709551615", false, "一八四四六七四四〇七三七〇九五五一六一五", "18446744073709551615"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kanji, arabic, err := KanjiToArabic(tt.input, tt.keepLeadingZeros)
			require.NoError(t, err)
			assert.Equal(t, tt.kanji, kanji)
			assert.Equal(t, tt.arabic, arabic)
		})
	}
}

func TestKanjiToArabicErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected *ParseError
		sentinel error
	}{
		{"", &ParseError{Kind: Empty}, ErrEmpty},
		{"てすと", &ParseError{Kind: InvalidToken, Offset: 0, Rune: 'て'}, ErrInvalidToken},
		{"てすと２", &ParseError{Kind: InvalidToken, Offset: 0, Rune: 'て'}, ErrInvalidToken},
		{"12a", &ParseError{Kind: InvalidToken, Offset: 2, Rune: 'a'}, ErrInvalidToken},
		{"一\xff", &ParseError{Kind: InvalidToken, Offset: 3, Rune: 0xff}, ErrInvalidToken},
		{"一万二億", &ParseError{Kind: OutOfOrderUnit, Offset: 9, Rune: '億'}, ErrOutOfOrderUnit},
		{"万万", &ParseError{Kind: OutOfOrderUnit, Offset: 3, Rune: '万'}, ErrOutOfOrderUnit},
		{"十百", &ParseError{Kind: OutOfOrderUnit, Offset: 3, Rune: '百'}, ErrOutOfOrderUnit},
		{overflowKanji, &ParseError{Kind: Overflow, Offset: len(overflowKanji) - len("六"), Rune: '六'}, ErrOverflow},
		{"18446744073709551616", &ParseError{Kind: Overflow, Offset: 19, Rune: '6'}, ErrOverflow},
		{"99999999999999999999", &ParseError{Kind: Overflow, Offset: 19, Rune: '9'}, ErrOverflow},
		{"二千京", &ParseError{Kind: Overflow, Offset: 6, Rune: '京'}, ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kanji, arabic, err := KanjiToArabic(tt.input, false)
			require.Error(t, err)
			assert.Empty(t, kanji)
			assert.Empty(t, arabic)
			assert.True(t, errors.Is(err, tt.sentinel), "errors.Is(%v, %v)", err, tt.sentinel)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			if diff := cmp.Diff(tt.expected, perr); diff != "" {
				t.Errorf("ParseError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Kind: InvalidToken, Offset: 3, Rune: 'て'}
	assert.Equal(t, `jpnorm: invalid numeral token: 'て' at offset 3`, err.Error())
	assert.Equal(t, "jpnorm: empty numeral", (&ParseError{Kind: Empty}).Error())
	assert.False(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, "OutOfOrderUnit", OutOfOrderUnit.String())
}

func TestParseKanjiNumeral(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"十", 10},
		{"百十", 110},
		{"廿", 20},
		{"卅五", 35},
		{"卌", 40},
		{"壱阡弐佰参拾肆", 1234},
		{"一億万", 100010000},
		{maxUint64Kanji, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKanjiNumeral(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToKanji(t *testing.T) {
	tests := []struct {
		n        uint64
		expected string
	}{
		{0, "〇"},
		{1, "一"},
		{10, "十"},
		{15, "十五"},
		{111, "百十一"},
		{1000, "千"},
		{1800, "千八百"},
		{2043, "二千四十三"},
		{10000, "一万"},
		{10010, "一万十"},
		{10000000, "千万"},
		{53420530532, "五百三十四億二千五十三万五百三十二"},
		{1e16, "一京"},
		{1e19, "千京"},
		{math.MaxUint64, maxUint64Kanji},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToKanji(tt.n))
		})
	}
}

func TestToKanjiRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 7, 20, 101, 9999, 10001, 123456789, 1e12 + 5, math.MaxUint64 - 1, math.MaxUint64} {
		_, arabic, err := KanjiToArabic(ToKanji(n), false)
		require.NoError(t, err, ToKanji(n))
		assert.Equal(t, strconv.FormatUint(n, 10), arabic)
	}
}

func FuzzToKanji(f *testing.F) {
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		n, err := c.GetUint64()
		if err != nil {
			return
		}
		_, arabic, err := KanjiToArabic(ToKanji(n), false)
		if err != nil {
			t.Fatalf("KanjiToArabic(ToKanji(%d)): %v", n, err)
		}
		if arabic != strconv.FormatUint(n, 10) {
			t.Errorf("KanjiToArabic(ToKanji(%d)) = %s", n, arabic)
		}
	})
}

func FuzzKanjiToArabic(f *testing.F) {
	f.Add([]byte("二百三五万一"), true)
	f.Fuzz(func(t *testing.T, data []byte, keep bool) {
		c := fuzz.NewConsumer(data)
		input, err := c.GetString()
		if err != nil {
			return
		}
		kanji, arabic, err := KanjiToArabic(input, keep)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("unexpected error type %T", err)
			}
			return
		}
		// The kanji spelling only respells digits, so it parses the same.
		kanji2, arabic2, err := KanjiToArabic(kanji, keep)
		if err != nil {
			t.Fatalf("KanjiToArabic(%q): %v", kanji, err)
		}
		if kanji2 != kanji || arabic2 != arabic {
			t.Errorf("respelled %q gave (%q, %q), want (%q, %q)", input, kanji2, arabic2, kanji, arabic)
		}
	})
}
