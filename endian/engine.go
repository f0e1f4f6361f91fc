// Package endian provides byte order utilities for the byte-array form of
// the lzs codec.
//
// The byte-array form splits every 16-bit unit into two bytes. The wire
// format is big-endian (byte0 = unit >> 8, byte1 = unit & 0xff), so most
// callers use GetBigEndianEngine:
//
//	engine := endian.GetBigEndianEngine()
//	buf := endian.AppendUnits(engine, nil, units)
//	units, ok := endian.Units(engine, buf)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendUnits appends every unit to dst as two bytes in the engine's byte order.
//
// Parameters:
//   - engine: Byte order used for each unit
//   - dst: Destination slice (may be nil)
//   - units: 16-bit units to append
//
// Returns:
//   - []byte: dst extended by 2*len(units) bytes
func AppendUnits(engine EndianEngine, dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = engine.AppendUint16(dst, u)
	}

	return dst
}

// Units regroups byte pairs into 16-bit units using the engine's byte order.
//
// Returns false when src has an odd length.
func Units(engine EndianEngine, src []byte) ([]uint16, bool) {
	if len(src)%2 != 0 {
		return nil, false
	}

	units := make([]uint16, len(src)/2)
	for i := range units {
		units[i] = engine.Uint16(src[i*2:])
	}

	return units, true
}
