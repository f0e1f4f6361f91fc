package compress

import (
	"unicode/utf8"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/errs"
)

// LZStringCompressor adapts the lzs text codec to the byte Codec interface.
//
// Input must be UTF-8 text; it is compressed into the lzs byte-array form
// (big-endian 16-bit units). Unlike the general-purpose codecs it has no
// framing, which makes it competitive on short JSON values.
type LZStringCompressor struct {
	codec *lzs.Codec
}

var _ Codec = (*LZStringCompressor)(nil)

// NewLZStringCompressor creates an LZ string compressor backed by a codec
// with its own alphabet cache and default buffer sizing.
func NewLZStringCompressor() LZStringCompressor {
	return LZStringCompressor{codec: lzs.New()}
}

// Compress compresses UTF-8 text.
//
// Returns:
//   - []byte: Byte-array form (nil for empty input)
//   - error: errs.ErrInvalidText if data is not valid UTF-8
func (c LZStringCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if !utf8.Valid(data) {
		return nil, errs.ErrInvalidText
	}

	return c.codec.EncodeBytes(string(data)), nil
}

// Decompress restores the UTF-8 text compressed by Compress.
func (c LZStringCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	text, err := c.codec.DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}
