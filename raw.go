package lzs

import (
	"slices"

	"github.com/arloliu/lzs/endian"
	"github.com/arloliu/lzs/errs"
)

// EncodeRaw compresses text into full 16-bit units.
//
// The units are returned as a slice rather than a string because they are
// arbitrary 16-bit values and may contain unpaired surrogates.
func (c *Codec) EncodeRaw(text string) []uint16 {
	w := c.pack(text, rawBits)
	defer w.Release()

	return slices.Clone(w.Units())
}

// DecodeRaw decompresses units produced by EncodeRaw.
//
// Returns:
//   - string: Decompressed text; "" with a nil error for nil units
//   - error: errs.ErrEmptyInput for an empty non-nil slice, errs.ErrTruncated or errs.ErrCorrupted for a bad stream
func (c *Codec) DecodeRaw(units []uint16) (string, error) {
	if units == nil {
		return "", nil
	}
	if len(units) == 0 {
		return "", errs.ErrEmptyInput
	}

	return unpack(units, rawReset)
}

// EncodeBytes compresses text into the raw form and serializes every unit
// as a byte pair in the codec's byte order (big-endian by default).
func (c *Codec) EncodeBytes(text string) []byte {
	w := c.pack(text, rawBits)
	defer w.Release()

	units := w.Units()

	return endian.AppendUnits(c.engine, make([]byte, 0, 2*len(units)), units)
}

// DecodeBytes decompresses a payload produced by EncodeBytes.
//
// Returns:
//   - string: Decompressed text; "" with a nil error for a nil slice
//   - error: errs.ErrEmptyInput for an empty slice, errs.ErrInvalidByteLength for an odd length,
//     errs.ErrTruncated or errs.ErrCorrupted for a bad stream
func (c *Codec) DecodeBytes(b []byte) (string, error) {
	if b == nil {
		return "", nil
	}
	if len(b) == 0 {
		return "", errs.ErrEmptyInput
	}

	units, ok := endian.Units(c.engine, b)
	if !ok {
		return "", errs.ErrInvalidByteLength
	}

	return unpack(units, rawReset)
}
