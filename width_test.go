package jpnorm

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestToFullWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc[]?.", "ａｂｃ［］？．"},
		{"a b", "ａ　ｂ"},
		{"~!", "～！"},
		{"ｶﾞｷﾞ", "ガギ"},
		{"ﾊﾟﾋﾟﾌﾟ", "パピプ"},
		{"ｳﾞ", "ヴ"},
		{"ﾜﾞ", "ヷ"},
		{"ｱﾞ", "ア゛"},
		{"ﾞﾟ", "゛゜"},
		{"｢ｱｲｳ｣｡", "「アイウ」。"},
		{"ｰ", "ー"},
		{"ｶ", "カ"},
		{"かな漢字", "かな漢字"},
		{"ａｂｃ", "ａｂｃ"},
		{"a\xffｶ", "ａ\xffカ"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToFullWidth(tt.input))
		})
	}
}

func TestToHalfWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ａｂｃ［］？．", "abc[]?."},
		{"ａ　ｂ", "a b"},
		{"ガギ", "ｶﾞｷﾞ"},
		{"パピプ", "ﾊﾟﾋﾟﾌﾟ"},
		{"ヴ", "ｳﾞ"},
		{"「アイウ」。", "｢ｱｲｳ｣｡"},
		{"ー゛゜", "ｰﾞﾟ"},
		{"ヵヶ", "ヵヶ"},
		{"ヾ", "ヾ"},
		{"ひらがな", "ひらがな"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToHalfWidth(tt.input))
		})
	}
}

func TestWidthVariants(t *testing.T) {
	assert.Equal(t, "ａ ｂ", ToFullWidthASCII("a b"))
	assert.Equal(t, "ｶﾞａ", ToFullWidthASCII("ｶﾞa"))
	assert.Equal(t, "a　b", ToHalfWidthASCII("ａ　ｂ"))
	assert.Equal(t, "ガ", ToHalfWidthASCII("ガ"))

	assert.Equal(t, "ガabc ", ToFullWidthKatakana("ｶﾞabc "))
	assert.Equal(t, "ｶﾞａ　", ToHalfWidthKatakana("ガａ　"))
}

func TestFullWidthRoundTrip(t *testing.T) {
	for _, s := range []string{"abc", "ｶﾞｷﾞ", "ﾊﾟﾋﾟ ｱ", "123 ?!", "｢ｳﾞｧｲｵﾘﾝ｣"} {
		require.Equal(t, HalfWidth, ClassifyForm(s), s)
		full := ToFullWidth(s)
		assert.Equal(t, full, ToFullWidth(ToHalfWidth(full)), s)
	}
}

func TestTransformerStreaming(t *testing.T) {
	const input = "ｶﾞｷﾞabc ﾊﾟ\xffｱ"
	const expected = "ガギａｂｃ　パ\xffア"
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(input)), Widen)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, expected, string(out))

	assert.Equal(t, expected, string(Widen.Bytes([]byte(input))))
}

func TestTransformerShortBuffers(t *testing.T) {
	dst := make([]byte, 16)

	// The voicing mark may follow in the next chunk.
	nDst, nSrc, err := Widen.Transform(dst, []byte("ｶ"), false)
	assert.ErrorIs(t, err, transform.ErrShortSrc)
	assert.Zero(t, nDst)
	assert.Zero(t, nSrc)

	nDst, nSrc, err = Widen.Transform(dst, []byte("ｶ"), true)
	require.NoError(t, err)
	assert.Equal(t, "カ", string(dst[:nDst]))
	assert.Equal(t, len("ｶ"), nSrc)

	// Incomplete code point.
	_, nSrc, err = Narrow.Transform(dst, []byte("a\xe3\x81"), false)
	assert.ErrorIs(t, err, transform.ErrShortSrc)
	assert.Equal(t, 1, nSrc)

	nDst, _, err = Narrow.Transform(dst[:2], []byte("ガ"), true)
	assert.ErrorIs(t, err, transform.ErrShortDst)
	assert.Zero(t, nDst)
}

func TestTransformerZeroValue(t *testing.T) {
	var zero Transformer
	assert.Equal(t, "abc", zero.String("abc"))
	assert.Equal(t, "ｶﾞひら\xffＡ", zero.String("ｶﾞひら\xffＡ"))
	assert.Equal(t, []byte("ガ"), zero.Bytes([]byte("ガ")))

	r := transform.NewReader(iotest.OneByteReader(strings.NewReader("かな ｶﾅ")), zero)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "かな ｶﾅ", string(out))

	dst := make([]byte, 2)
	nDst, _, err := zero.Transform(dst, []byte("ガ"), true)
	assert.ErrorIs(t, err, transform.ErrShortDst)
	assert.Zero(t, nDst)
}

func FuzzWidth(f *testing.F) {
	f.Add([]byte("ｶﾞｷﾞabc ガギ\xff"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		str, err := c.GetString()
		if err != nil {
			return
		}
		full, half := ToFullWidth(str), ToHalfWidth(str)
		if utf8.ValidString(str) && (!utf8.ValidString(full) || !utf8.ValidString(half)) {
			t.Fatalf("invalid UTF-8 from valid input %q", str)
		}
		if ToFullWidth(full) != full {
			t.Errorf("ToFullWidth not idempotent on %q", str)
		}
		if CodepointCount(half) < CodepointCount(str) {
			t.Errorf("ToHalfWidth(%q) lost code points", str)
		}
	})
}
