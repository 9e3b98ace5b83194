package jpnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseFolding(t *testing.T) {
	tests := []struct {
		input      string
		lower      string
		upper      string
		capitalize string
	}{
		{"", "", "", ""},
		{"hELLO", "hello", "HELLO", "Hello"},
		{"ｇｏｏｇｌｅ", "ｇｏｏｇｌｅ", "ＧＯＯＧＬＥ", "Ｇｏｏｇｌｅ"},
		{"ＡＢＣabc", "ａｂｃabc", "ＡＢＣABC", "Ａｂｃabc"},
		{"あいうABC", "あいうabc", "あいうABC", "あいうabc"},
		{"\xffABC", "\xffabc", "\xffABC", "\xffabc"},
		{"Éa", "Éa", "ÉA", "Éa"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.lower, LowerString(tt.input))
			assert.Equal(t, tt.upper, UpperString(tt.input))
			assert.Equal(t, tt.capitalize, CapitalizeString(tt.input))
		})
	}
}
