package pool

import "sync"

// unitSliceMaxCap bounds the capacity of unit slices retained by the pool.
const unitSliceMaxCap = 1 << 20

// Unit slice pools hold the transient 16-bit unit buffers produced by the
// bit packer and consumed by the alphabet adapters.
var (
	uint16SlicePool = sync.Pool{
		New: func() any { return &[]uint16{} },
	}
)

// GetUint16Slice retrieves an empty uint16 slice with at least the requested capacity.
//
// The returned slice has length 0. The caller must call the returned cleanup
// function once it no longer references the slice; the cleanup stores the
// final slice (including any growth) back into the pool.
//
// Parameters:
//   - capacity: The minimum capacity of the slice
//
// Returns:
//   - *[]uint16: Pointer to the pooled slice; append through the pointer so growth is retained
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	units, cleanup := pool.GetUint16Slice(256)
//	defer cleanup()
//	*units = append(*units, 0x41)
func GetUint16Slice(capacity int) (*[]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)
	if cap(*ptr) < capacity {
		*ptr = make([]uint16, 0, capacity)
	} else {
		*ptr = (*ptr)[:0]
	}

	return ptr, func() {
		if cap(*ptr) > unitSliceMaxCap {
			return
		}
		*ptr = (*ptr)[:0]
		uint16SlicePool.Put(ptr)
	}
}
