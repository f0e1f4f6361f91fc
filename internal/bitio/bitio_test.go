package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitWriter_PacksMSBFirstWritesLSBFirst(t *testing.T) {
	w := NewUnitWriter(6)
	w.WriteBits(1, 3) // wire bits 1,0,0
	w.Flush()

	require.Equal(t, []uint16{0b100000}, w.Units())
}

func TestUnitWriter_FlushOnBoundaryEmitsZeroUnit(t *testing.T) {
	w := NewUnitWriter(6)
	w.WriteBits(0b111111, 6)
	require.Len(t, w.Units(), 1)

	w.Flush()
	require.Equal(t, []uint16{0b111111, 0}, w.Units())
}

func TestUnitWriter_SpansUnits(t *testing.T) {
	w := NewUnitWriter(6)
	w.WriteBits(0xff, 8)
	w.Flush()

	// 8 one-bits: a full unit, then two ones padded with four zeros
	require.Equal(t, []uint16{0b111111, 0b110000}, w.Units())
}

func TestUnitWriter_Buffer(t *testing.T) {
	buf := make([]uint16, 3, 16)
	w := NewUnitWriterBuffer(16, buf)
	w.WriteBits(0, 16)
	w.Flush()

	require.Len(t, w.Units(), 2)
	require.Equal(t, 16, w.BitsPerUnit())
	require.Equal(t, &buf[:1][0], &w.Units()[0], "writer should reuse the supplied buffer")
}

func TestUnitWriter_InvalidWidth(t *testing.T) {
	require.Panics(t, func() { NewUnitWriter(0) })
	require.Panics(t, func() { NewUnitWriter(17) })
}

func TestUnitReader_ReadBits(t *testing.T) {
	r := NewUnitReader([]uint16{0b100000}, 32)

	require.Equal(t, 1, r.ReadBits(3))
	require.Equal(t, 1, r.Len())
	require.Equal(t, 1, r.Index())
}

func TestUnitReader_PastEndReadsZero(t *testing.T) {
	r := NewUnitReader([]uint16{0b111111}, 32)

	require.Equal(t, 0b111111, r.ReadBits(6))
	require.Equal(t, 2, r.Index())
	require.Equal(t, 0, r.ReadBits(12))
	require.Equal(t, 4, r.Index())
}

func TestRoundTrip(t *testing.T) {
	type code struct{ value, width int }
	codes := []code{
		{0, 2}, {0x41, 8}, {5, 3}, {1, 3}, {0x263a, 16}, {2, 4}, {1023, 10}, {0, 1}, {1, 1},
	}

	widths := []struct {
		bits  int
		reset uint16
	}{
		{6, 32},
		{15, 16384},
		{16, 32768},
	}

	for _, wd := range widths {
		t.Run("", func(t *testing.T) {
			w := NewUnitWriter(wd.bits)
			for _, c := range codes {
				w.WriteBits(c.value, c.width)
			}
			w.Flush()

			for _, u := range w.Units() {
				require.Less(t, int(u), 1<<wd.bits)
			}

			r := NewUnitReader(w.Units(), wd.reset)
			for _, c := range codes {
				require.Equal(t, c.value, r.ReadBits(c.width))
			}
		})
	}
}

func TestPooledUnitWriter(t *testing.T) {
	w := NewPooledUnitWriter(6, 4)
	for range 10 {
		w.WriteBits(0b101, 3)
	}
	w.Flush()

	require.Len(t, w.Units(), 6)
	require.GreaterOrEqual(t, cap(w.Units()), 6)

	w.Release()
	require.Nil(t, w.Units())

	// second release must be harmless
	w.Release()
}

func TestUnitWriter_ReleaseWithoutPool(t *testing.T) {
	w := NewUnitWriter(16)
	w.WriteBits(1, 1)
	w.Flush()
	w.Release()

	require.Equal(t, []uint16{0x8000}, w.Units())
}
