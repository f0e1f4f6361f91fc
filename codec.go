package lzs

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/lzs/alphabet"
	"github.com/arloliu/lzs/endian"
	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/format"
	"github.com/arloliu/lzs/internal/bitio"
	"github.com/arloliu/lzs/internal/lz"
	"github.com/arloliu/lzs/internal/options"
)

// Unit widths and reader reset masks of the output forms.
const (
	symbolBits  = 6
	utf16Bits   = 15
	rawBits     = 16
	symbolReset = 1 << (symbolBits - 1)
	utf16Reset  = 1 << (utf16Bits - 1)
	rawReset    = 1 << (rawBits - 1)
)

// Codec compresses text into the five output forms and back.
//
// A Codec is safe for concurrent use. The zero value is not usable; create
// one with New.
type Codec struct {
	cache        *alphabet.Cache
	engine       endian.EndianEngine
	unitCapacity int
}

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithCache makes the codec resolve reverse alphabet tables through cache
// instead of the process default. A nil cache keeps the default.
func WithCache(cache *alphabet.Cache) Option {
	return options.NoError(func(c *Codec) {
		if cache != nil {
			c.cache = cache
		}
	})
}

// WithLittleEndian makes the byte-array form store units low byte first.
//
// Payloads written this way are not readable by big-endian decoders,
// including the lz-string reference implementations.
func WithLittleEndian() Option {
	return options.NoError(func(c *Codec) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian makes the byte-array form store units high byte first. This
// is the default.
func WithBigEndian() Option {
	return options.NoError(func(c *Codec) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithUnitCapacity sets the initial capacity, in units, of the pooled
// buffers used while packing. Values <= 0 size buffers from the input.
func WithUnitCapacity(n int) Option {
	return options.NoError(func(c *Codec) {
		c.unitCapacity = n
	})
}

// New creates a codec.
//
// Example:
//
//	codec := lzs.New(lzs.WithCache(alphabet.NewCache()))
//	packed := codec.EncodeBase64(`{"hp":12}`)
//	text, err := codec.DecodeBase64(packed)
func New(opts ...Option) *Codec {
	c := &Codec{
		cache:  alphabet.Default(),
		engine: endian.GetBigEndianEngine(),
	}
	// codec options never fail
	_ = options.Apply(c, opts...)

	return c
}

// Encode compresses text into the given form and returns it as bytes.
//
// The string forms are returned as their UTF-8 bytes. Raw and Bytes both
// return byte pairs in the codec's byte order.
//
// Parameters:
//   - alpha: Output form
//   - text: Text to compress
//
// Returns:
//   - []byte: Encoded payload
//   - error: errs.ErrInvalidAlphabet for an unknown form
func (c *Codec) Encode(alpha format.AlphabetType, text string) ([]byte, error) {
	switch alpha {
	case format.AlphabetRaw, format.AlphabetBytes:
		return c.EncodeBytes(text), nil
	case format.AlphabetUTF16:
		return []byte(c.EncodeUTF16(text)), nil
	case format.AlphabetBase64:
		return []byte(c.EncodeBase64(text)), nil
	case format.AlphabetURIComponent:
		return []byte(c.EncodeURIComponent(text)), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAlphabet, alpha)
	}
}

// Decode is the inverse of Encode.
//
// Parameters:
//   - alpha: Form the payload was encoded with
//   - data: Encoded payload
//
// Returns:
//   - string: Decompressed text
//   - error: errs.ErrInvalidAlphabet for an unknown form, or any error of the form's decoder
func (c *Codec) Decode(alpha format.AlphabetType, data []byte) (string, error) {
	switch alpha {
	case format.AlphabetRaw, format.AlphabetBytes:
		return c.DecodeBytes(data)
	case format.AlphabetUTF16:
		return c.DecodeUTF16(string(data))
	case format.AlphabetBase64:
		return c.DecodeBase64(string(data))
	case format.AlphabetURIComponent:
		return c.DecodeURIComponent(string(data))
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidAlphabet, alpha)
	}
}

// pack compresses text into units of bitsPerUnit bits.
//
// The returned writer is pooled; callers must Release it once they no
// longer reference its units.
func (c *Codec) pack(text string, bitsPerUnit int) *bitio.UnitWriter {
	units := utf16.Encode([]rune(text))

	capacity := c.unitCapacity
	if capacity <= 0 {
		capacity = len(units) + 1
	}

	w := bitio.NewPooledUnitWriter(bitsPerUnit, capacity)
	lz.Compress(units, w)

	return w
}

// unpack decompresses units read with the given reset mask.
func unpack(units []uint16, resetValue uint16) (string, error) {
	out, err := lz.Decompress(bitio.NewUnitReader(units, resetValue))
	if err != nil {
		return "", err
	}

	return string(utf16.Decode(out)), nil
}
