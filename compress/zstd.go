package compress

// ZstdCompressor provides Zstandard compression for stored blobs.
//
// It gives the best ratio of the built-in codecs on save files of a few
// kilobytes and up, at the cost of slower compression than S2 or LZ4.
//
// Two implementations exist: the pure Go klauspost/compress encoder used by
// default, and valyala/gozstd when built with the gozstd tag and cgo.
// Their outputs are interchangeable standard zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(saveData)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
