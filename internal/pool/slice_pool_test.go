package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUint16Slice(t *testing.T) {
	t.Run("capacity and length", func(t *testing.T) {
		units, cleanup := GetUint16Slice(64)
		defer cleanup()

		require.Len(t, *units, 0)
		require.GreaterOrEqual(t, cap(*units), 64)
	})

	t.Run("growth is kept through the pointer", func(t *testing.T) {
		units, cleanup := GetUint16Slice(1)
		for i := range 100 {
			*units = append(*units, uint16(i))
		}
		require.Len(t, *units, 100)
		require.Equal(t, uint16(99), (*units)[99])
		cleanup()
	})

	t.Run("reused slice comes back empty", func(t *testing.T) {
		units, cleanup := GetUint16Slice(8)
		*units = append(*units, 1, 2, 3)
		cleanup()

		again, cleanup2 := GetUint16Slice(8)
		defer cleanup2()
		require.Len(t, *again, 0)
	})
}

func TestUint16SlicePoolConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := range 100 {
				units, cleanup := GetUint16Slice(16)
				*units = append(*units, uint16(seed), uint16(i))
				assert.Equal(t, uint16(seed), (*units)[0])
				cleanup()
			}
		}(g)
	}
	wg.Wait()
}
