package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestAppendUnits_BigEndian(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := AppendUnits(engine, nil, []uint16{0x1234, 0x00ff, 0xff00})
	require.Equal(t, []byte{0x12, 0x34, 0x00, 0xff, 0xff, 0x00}, buf)

	// Appends after existing content
	buf = AppendUnits(engine, []byte{0xaa}, []uint16{0x0102})
	require.Equal(t, []byte{0xaa, 0x01, 0x02}, buf)
}

func TestAppendUnits_LittleEndian(t *testing.T) {
	buf := AppendUnits(GetLittleEndianEngine(), nil, []uint16{0x1234})
	require.Equal(t, []byte{0x34, 0x12}, buf)
}

func TestUnits(t *testing.T) {
	engine := GetBigEndianEngine()

	t.Run("round trip", func(t *testing.T) {
		in := []uint16{0, 1, 255, 256, 0x7fff, 0xffff}
		units, ok := Units(engine, AppendUnits(engine, nil, in))
		require.True(t, ok)
		require.Equal(t, in, units)
	})

	t.Run("empty", func(t *testing.T) {
		units, ok := Units(engine, []byte{})
		require.True(t, ok)
		require.Empty(t, units)
	})

	t.Run("odd length", func(t *testing.T) {
		_, ok := Units(engine, []byte{1, 2, 3})
		require.False(t, ok)
	})
}
