package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxSize bounds the decoded size announced by a block header.
const lz4MaxSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances; each holds a hash table
// worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
//
// Raw LZ4 blocks do not record their decoded size, so every block is
// prefixed with the original length as a uvarint.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Length-prefixed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := binary.AppendUvarint(nil, uint64(len(data)))
	header := len(dst)
	dst = append(dst, make([]byte, lz4.CompressBlockBound(len(data)))...)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[header:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:header+n], nil
}

// Decompress decompresses a block produced by Compress.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: A header or block error; blocks announcing more than 128 MiB are rejected
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, header := binary.Uvarint(data)
	if header <= 0 {
		return nil, fmt.Errorf("lz4 decompression failed: invalid length header")
	}
	if size > lz4MaxSize {
		return nil, fmt.Errorf("lz4 decompression failed: block of %d bytes exceeds limit", size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data[header:], buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, header says %d", n, size)
	}

	return buf, nil
}
