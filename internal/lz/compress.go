package lz

import "github.com/arloliu/lzs/internal/bitio"

// encoder holds the per-call dictionary.
//
// Multi-unit entries are keyed by (prefix code, next unit), which maps the
// same substrings to the same codes as a substring-keyed table.
type encoder struct {
	w     bitio.BitWriter
	sched *schedule

	units   map[uint16]int      // single-unit entries
	pairs   map[uint64]int      // prefix code<<16 | unit -> code
	pending map[uint16]struct{} // units whose literal has not been written yet
}

// match is the currently matched prefix.
type match struct {
	code   int
	unit   uint16 // first unit, meaningful when single
	single bool
	empty  bool
}

// Compress encodes units into w and flushes it.
//
// The stream always ends with the end-of-stream marker, so empty input still
// produces one unit.
func Compress(units []uint16, w bitio.BitWriter) {
	compress(units, w, newSchedule())
}

func compress(input []uint16, w bitio.BitWriter, sched *schedule) {
	e := &encoder{
		w:       w,
		sched:   sched,
		units:   make(map[uint16]int),
		pairs:   make(map[uint64]int),
		pending: make(map[uint16]struct{}),
	}

	cur := match{empty: true}
	for _, c := range input {
		if _, ok := e.units[c]; !ok {
			e.units[c] = sched.assign()
			e.pending[c] = struct{}{}
		}

		if cur.empty {
			cur = match{code: e.units[c], unit: c, single: true}
			continue
		}

		key := uint64(cur.code)<<16 | uint64(c) //nolint:gosec
		if code, ok := e.pairs[key]; ok {
			cur = match{code: code}
			continue
		}

		e.emit(cur)
		e.pairs[key] = sched.assign()
		cur = match{code: e.units[c], unit: c, single: true}
	}

	if !cur.empty {
		e.emit(cur)
	}

	w.WriteBits(codeEndOfStream, sched.numBits)
	w.Flush()
}

// emit closes out the matched prefix.
func (e *encoder) emit(m match) {
	if _, ok := e.pending[m.unit]; m.single && ok {
		if m.unit < 256 {
			e.w.WriteBits(codeNarrowLiteral, e.sched.numBits)
			e.w.WriteBits(int(m.unit), narrowLiteralBits)
		} else {
			e.w.WriteBits(codeExtendedLiteral, e.sched.numBits)
			e.w.WriteBits(int(m.unit), extendedLiteralBits)
		}
		delete(e.pending, m.unit)
		// The literal replaces the code its first occurrence would have used.
		e.sched.tick()
	} else {
		e.w.WriteBits(m.code, e.sched.numBits)
	}

	e.sched.tick()
}
