package lzs

import (
	"strings"
	"unicode/utf16"

	"github.com/arloliu/lzs/errs"
)

// utf16Offset keeps every emitted code unit clear of the control range.
const utf16Offset = 32

// EncodeUTF16 compresses text into 15-bit code units offset by 32 and
// appends a single space.
//
// Every unit of the result is a printable BMP character outside the
// surrogate range, so the string survives storage layers that validate
// UTF-16.
func (c *Codec) EncodeUTF16(text string) string {
	w := c.pack(text, utf16Bits)
	defer w.Release()

	units := w.Units()

	var sb strings.Builder
	// 15-bit values plus the offset need at most three UTF-8 bytes.
	sb.Grow(3*len(units) + 1)
	for _, u := range units {
		sb.WriteRune(rune(u) + utf16Offset)
	}
	sb.WriteByte(' ')

	return sb.String()
}

// DecodeUTF16 decompresses a payload produced by EncodeUTF16.
func (c *Codec) DecodeUTF16(s string) (string, error) {
	if s == "" {
		return "", errs.ErrEmptyInput
	}

	units := utf16.Encode([]rune(s))
	for i, u := range units {
		units[i] = u - utf16Offset
	}

	return unpack(units, utf16Reset)
}
