package bitio

import "github.com/arloliu/lzs/internal/pool"

// UnitWriter is a BitWriter producing units of a fixed bit width.
type UnitWriter struct {
	units       []uint16
	val         uint32 // bits of the unit under construction
	position    int    // number of bits in val
	bitsPerUnit int

	pooled  *[]uint16
	release func()
}

var _ BitWriter = (*UnitWriter)(nil)

// NewUnitWriter creates a writer emitting units of bitsPerUnit bits (1-16).
func NewUnitWriter(bitsPerUnit int) *UnitWriter {
	return NewUnitWriterBuffer(bitsPerUnit, nil)
}

// NewUnitWriterBuffer creates a writer that appends units to buf[:0].
//
// It lets callers back the writer with a pooled slice; the final slice,
// including any growth, is returned by Units.
func NewUnitWriterBuffer(bitsPerUnit int, buf []uint16) *UnitWriter {
	if bitsPerUnit < 1 || bitsPerUnit > 16 {
		panic("bitio: bits per unit must be in [1, 16]")
	}

	return &UnitWriter{
		units:       buf[:0],
		bitsPerUnit: bitsPerUnit,
	}
}

// NewPooledUnitWriter creates a writer backed by a pooled unit slice.
//
// Callers must call Release once they are done with the slice returned by
// Units; the slice must not be used afterwards.
func NewPooledUnitWriter(bitsPerUnit, capacity int) *UnitWriter {
	ptr, release := pool.GetUint16Slice(capacity)
	w := NewUnitWriterBuffer(bitsPerUnit, *ptr)
	w.pooled = ptr
	w.release = release

	return w
}

// Release returns a pooled backing slice to the pool. It is a no-op for
// writers that were not created by NewPooledUnitWriter.
func (w *UnitWriter) Release() {
	if w.release == nil {
		return
	}

	*w.pooled = w.units
	w.release()
	w.units = nil
	w.pooled = nil
	w.release = nil
}

// WriteBits writes the n low-order bits of value, lowest bit first.
func (w *UnitWriter) WriteBits(value, n int) {
	for range n {
		w.val = w.val<<1 | uint32(value&1) //nolint:gosec
		value >>= 1
		w.position++
		if w.position == w.bitsPerUnit {
			w.push()
		}
	}
}

// Flush pads the unit under construction with zero bits and emits it.
//
// A unit is always emitted, even when the previous write ended exactly on a
// unit boundary; decoders rely on this trailing unit.
func (w *UnitWriter) Flush() {
	for {
		w.val <<= 1
		w.position++
		if w.position == w.bitsPerUnit {
			w.push()
			return
		}
	}
}

func (w *UnitWriter) push() {
	w.units = append(w.units, uint16(w.val)) //nolint:gosec
	w.val = 0
	w.position = 0
}

// Units returns the units emitted so far.
//
// The returned slice aliases the writer's buffer.
func (w *UnitWriter) Units() []uint16 {
	return w.units
}

// BitsPerUnit returns the unit width of the writer.
func (w *UnitWriter) BitsPerUnit() int {
	return w.bitsPerUnit
}
