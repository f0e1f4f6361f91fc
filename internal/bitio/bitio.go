// Package bitio packs variable-width codes into fixed-width units and reads
// them back.
//
// Units are filled most-significant bit first: every written bit shifts the
// accumulator left by one. Code values are written least-significant bit
// first, and ReadBits accumulates low-to-high, so bit i of a value is the
// i-th bit on the wire. Neither side knows about alphabets; they are
// parameterized only by the unit width (writer) or the reset mask (reader).
package bitio

// BitWriter accumulates variable-width codes into fixed-width units.
type BitWriter interface {
	// WriteBits writes the n low-order bits of value, lowest bit first.
	WriteBits(value, n int)

	// Flush zero-pads the current unit and emits it.
	Flush()
}

// BitReader consumes bits from a sequence of fixed-width units.
type BitReader interface {
	// ReadBits reads n bits; the i-th bit read becomes bit i of the result.
	ReadBits(n int) int

	// Index returns the index of the next unit the reader will fetch.
	Index() int

	// Len returns the number of units available to the reader.
	Len() int
}
