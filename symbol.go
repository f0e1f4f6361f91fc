package lzs

import (
	"strings"

	"github.com/arloliu/lzs/alphabet"
	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/internal/pool"
)

// Base64 padding by len(output) % 4. The length-1 case gets three pad
// symbols, which no standard Base64 decoder produces; existing payloads
// depend on it.
var base64Padding = [4]string{"", "===", "==", "="}

// EncodeBase64 compresses text into the Base64 alphabet, padded to a
// multiple of four symbols.
func (c *Codec) EncodeBase64(text string) string {
	s := c.encodeSymbols(text, alphabet.Base64)

	return s + base64Padding[len(s)%4]
}

// DecodeBase64 decompresses a payload produced by EncodeBase64.
//
// Symbols outside the alphabet decode as zero. It returns errs.ErrEmptyInput
// for "", errs.ErrTruncated when the payload ends before the end marker and
// errs.ErrCorrupted for an invalid code.
func (c *Codec) DecodeBase64(s string) (string, error) {
	return c.decodeSymbols(s, alphabet.Base64)
}

// EncodeURIComponent compresses text into the URI-safe alphabet. The result
// needs no escaping in a URI component and is never padded.
func (c *Codec) EncodeURIComponent(text string) string {
	return c.encodeSymbols(text, alphabet.URIComponent)
}

// DecodeURIComponent decompresses a payload produced by EncodeURIComponent.
//
// Spaces are read as '+', undoing form decoding that turned '+' into ' '.
func (c *Codec) DecodeURIComponent(s string) (string, error) {
	return c.decodeSymbols(strings.ReplaceAll(s, " ", "+"), alphabet.URIComponent)
}

func (c *Codec) encodeSymbols(text, symbols string) string {
	w := c.pack(text, symbolBits)
	defer w.Release()

	units := w.Units()

	var sb strings.Builder
	sb.Grow(len(units) + 3)
	for _, u := range units {
		sb.WriteByte(symbols[u])
	}

	return sb.String()
}

func (c *Codec) decodeSymbols(s, symbols string) (string, error) {
	if s == "" {
		return "", errs.ErrEmptyInput
	}

	table := c.cache.MustTable(symbols)

	units, cleanup := pool.GetUint16Slice(len(s))
	defer cleanup()

	for _, r := range s {
		*units = append(*units, table.Value(r))
	}

	return unpack(*units, symbolReset)
}
