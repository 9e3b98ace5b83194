package jpnorm

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// The encoders are stateless, so a single instance serves every goroutine.
var (
	eucJPEncoder    = japanese.EUCJP.NewEncoder()
	shiftJISEncoder = japanese.ShiftJIS.NewEncoder()
)

// charsetOf returns the narrowest character set containing r.
//
// JIS X 0208 membership is decided by the EUC-JP encoder: a two-byte code
// in rows 1-8 or 16-84 is a JIS X 0208 character. The encoder also knows the
// NEC and IBM extensions of CP932 (row 13 and rows 89 and up), which are
// rejected here and fall through to the JIS X 0213 table or CP932.
func charsetOf(r rune) CharacterSet {
	if r < 0x80 {
		return ASCII
	}
	if entry, ok := propertySearch(charsetOverrides, r); ok {
		return CharacterSet(entry[2])
	}
	if inJISX0208(r) {
		return JISX0208
	}
	if _, ok := propertySearch(jisx0213CodePoints, r); ok {
		return JISX0213
	}
	if encodable(shiftJISEncoder, r) {
		return CP932
	}
	return UnicodeOnly
}

func inJISX0208(r rune) bool {
	var code [4]byte
	n, ok := encodeRune(eucJPEncoder, r, code[:])
	if !ok || n != 2 || code[0] < 0xa1 || code[0] > 0xfe || code[1] < 0xa1 || code[1] > 0xfe {
		return false
	}
	row := int(code[0]) - 0xa0
	return row >= 1 && row <= 8 || row >= 16 && row <= 84
}

func encodable(enc *encoding.Encoder, r rune) bool {
	var code [4]byte
	_, ok := encodeRune(enc, r, code[:])
	return ok
}

// encodeRune encodes r into dst and returns the number of bytes written.
func encodeRune(enc *encoding.Encoder, r rune, dst []byte) (int, bool) {
	var src [utf8.UTFMax]byte
	n := utf8.EncodeRune(src[:], r)
	nDst, nSrc, err := enc.Transform(dst, src[:n], true)
	if err != nil || nSrc != n {
		return 0, false
	}
	return nDst, true
}

// EncodeShiftJIS converts UTF-8 text to Shift_JIS (CP932). ASCII passes
// through byte for byte. It fails on code points CP932 cannot represent.
func EncodeShiftJIS(str string) ([]byte, error) {
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(str))
	if err != nil {
		return nil, fmt.Errorf("encode Shift_JIS: %w", err)
	}
	return out, nil
}

// DecodeShiftJIS converts Shift_JIS (CP932) bytes to UTF-8 text.
func DecodeShiftJIS(b []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode Shift_JIS: %w", err)
	}
	return string(out), nil
}
