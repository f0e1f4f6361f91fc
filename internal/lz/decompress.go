package lz

import (
	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/internal/bitio"
)

// span locates a dictionary entry inside the decoded output.
//
// Every entry is a prefix of output already produced, so entries never need
// their own storage.
type span struct {
	off int
	n   int
}

// Decompress decodes a stream produced by Compress.
//
// Returns:
//   - []uint16: decoded units (empty for a stream holding only the end marker)
//   - error: errs.ErrTruncated if units run out before the end marker,
//     errs.ErrCorrupted if a code is not in the dictionary
func Decompress(r bitio.BitReader) ([]uint16, error) {
	return decompress(r, newDecodeSchedule())
}

func decompress(r bitio.BitReader, sched *schedule) ([]uint16, error) {
	var first uint16
	switch r.ReadBits(selectorBits) {
	case codeNarrowLiteral:
		first = uint16(r.ReadBits(narrowLiteralBits)) //nolint:gosec
	case codeExtendedLiteral:
		first = uint16(r.ReadBits(extendedLiteralBits)) //nolint:gosec
	case codeEndOfStream:
		return []uint16{}, nil
	default:
		return nil, errs.ErrCorrupted
	}

	// codes 0-2 are reserved, code 3 is the first literal
	dict := make([]span, firstDictCode, 64)
	dict = append(dict, span{off: 0, n: 1})
	result := []uint16{first}
	w := dict[firstDictCode]

	for {
		if r.Index() > r.Len() {
			return nil, errs.ErrTruncated
		}

		code := r.ReadBits(sched.numBits)

		var entry span
		switch code {
		case codeNarrowLiteral, codeExtendedLiteral:
			width := narrowLiteralBits
			if code == codeExtendedLiteral {
				width = extendedLiteralBits
			}
			unit := uint16(r.ReadBits(width)) //nolint:gosec

			sched.assign()
			entry = span{off: len(result), n: 1}
			dict = append(dict, entry)
			result = append(result, unit)
			sched.tick()
		case codeEndOfStream:
			return result, nil
		default:
			switch {
			case code < sched.dictSize:
				src := dict[code]
				entry = span{off: len(result), n: src.n}
				result = append(result, result[src.off:src.off+src.n]...)
			case code == sched.dictSize:
				// The code being defined right now: w followed by w's first unit.
				entry = span{off: len(result), n: w.n + 1}
				result = append(result, result[w.off:w.off+w.n]...)
				result = append(result, result[w.off])
			default:
				return nil, errs.ErrCorrupted
			}
		}

		// w is immediately followed by entry in result, so w+entry[0] is a
		// contiguous prefix starting at w.
		sched.assign()
		dict = append(dict, span{off: w.off, n: w.n + 1})
		sched.tick()
		w = entry
	}
}
