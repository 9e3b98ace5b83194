package command

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the jpnorm command with args and stdin and returns what it
// wrote to standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := NewRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"default", "", []string{"width", "ｶﾞｷﾞabc"}, "ガギａｂｃ\n"},
		{"half katakana", "", []string{"width", "--to", "half", "--only", "katakana", "ガギａｂｃ"}, "ｶﾞｷﾞａｂｃ\n"},
		{"ascii keeps space", "", []string{"width", "--only", "ascii", "a b"}, "ａ ｂ\n"},
		{"stdin", "\xef\xbb\xbfa b\nｶ\n", []string{"width"}, "ａ　ｂ\nカ\n"},
		{"several args", "", []string{"width", "--to", "HALF", "ａ", "ア"}, "a\nｱ\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, _, err := run(t, "", "width", "--to", "wide", "a")
	assert.ErrorContains(t, err, `invalid value "wide"`)
}

func TestKana(t *testing.T) {
	out, _, err := run(t, "", "kana", "ひらがな")
	require.NoError(t, err)
	assert.Equal(t, "ヒラガナ\n", out)

	out, _, err = run(t, "", "kana", "--to", "hiragana", "--compose-voicing", "ウ゛ァイオリン")
	require.NoError(t, err)
	assert.Equal(t, "ゔぁいおりん\n", out)

	out, _, err = run(t, "", "kana", "--to", "none", "--compose-voicing", "か゛")
	require.NoError(t, err)
	assert.Equal(t, "が\n", out)

	out, _, err = run(t, "", "kana", "--to", "none", "か゛")
	require.NoError(t, err)
	assert.Equal(t, "か゛\n", out)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"kanji", []string{"number", "五百三十四億二千五十三万五百三十二"}, "五百三十四億二千五十三万五百三十二\t53420530532\n"},
		{"mixed", []string{"number", "2千四十３"}, "二千四十三\t2043\n"},
		{"trim zeros", []string{"number", "０１２"}, "〇一二\t12\n"},
		{"keep zeros", []string{"number", "--keep-leading-zeros", "０１２"}, "〇一二\t012\n"},
		{"to kanji", []string{"number", "--to-kanji", "10000", "18446744073709551615"}, "一万\t10000\n千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十五\t18446744073709551615\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNumberErrors(t *testing.T) {
	out, stderr, err := run(t, "十五\nてすと\n", "number", "--log-fmt", "logfmt")
	require.NoError(t, err)
	assert.Equal(t, "十五\t15\nてすと\terror: jpnorm: invalid numeral token: 'て' at offset 0\n", out)
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "input=てすと")

	_, _, err = run(t, "", "number", "--strict", "十五", "てすと", "万万")
	assert.ErrorContains(t, err, "2 numerals could not be converted")

	out, _, err = run(t, "", "number", "--to-kanji", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc\terror: invalid syntax\n", out)
}

func TestClassify(t *testing.T) {
	out, _, err := run(t, "", "classify", "京都", "ｶﾀｶﾅカタカナ")
	require.NoError(t, err)
	for _, want := range []string{"京都", "KANJI", "FULL_WIDTH", "JISX0208", "ｶﾀｶﾅカタカナ", "KATAKANA", "UNKNOWN_FORM"} {
		assert.Contains(t, out, want)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("JPNORM_TO", "half")
	out, _, err := run(t, "", "width", "ａｂｃ")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)

	// Flags on the command line win.
	out, _, err = run(t, "", "width", "--to", "full", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ａｂｃ\n", out)

	t.Setenv("JPNORM_LOG_LEVEL", "verbose")
	_, _, err = run(t, "", "width", "abc")
	assert.ErrorContains(t, err, `invalid log-level "verbose"`)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := run(t, "", "--log-fmt", "xml", "width", "a")
	assert.ErrorContains(t, err, `invalid log-fmt "xml"`)
}
