package bitio

// UnitReader is a BitReader over a sequence of fixed-width units.
//
// The reader starts with the mask at resetValue, the highest bit of a unit
// (2^(bitsPerUnit-1)). Units past the end of the sequence read as zero; the
// caller detects exhaustion through Index and Len.
type UnitReader struct {
	units []uint16
	val   uint16
	mask  uint16
	reset uint16
	index int
}

var _ BitReader = (*UnitReader)(nil)

// NewUnitReader creates a reader over units with the given reset mask.
func NewUnitReader(units []uint16, resetValue uint16) *UnitReader {
	r := &UnitReader{
		units: units,
		mask:  resetValue,
		reset: resetValue,
		index: 1,
	}
	r.val = r.unit(0)

	return r
}

func (r *UnitReader) unit(i int) uint16 {
	if i < len(r.units) {
		return r.units[i]
	}

	return 0
}

// ReadBit returns the next bit, fetching a new unit when the mask runs out.
func (r *UnitReader) ReadBit() int {
	bit := 0
	if r.val&r.mask != 0 {
		bit = 1
	}

	r.mask >>= 1
	if r.mask == 0 {
		r.mask = r.reset
		r.val = r.unit(r.index)
		r.index++
	}

	return bit
}

// ReadBits reads n bits, low-to-high.
func (r *UnitReader) ReadBits(n int) int {
	v := 0
	for i := range n {
		v |= r.ReadBit() << i
	}

	return v
}

// Index returns the index of the next unit to fetch.
func (r *UnitReader) Index() int {
	return r.index
}

// Len returns the number of units available.
func (r *UnitReader) Len() int {
	return len(r.units)
}
