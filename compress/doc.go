// Package compress provides byte-level codecs for stored blobs.
//
// The store package compresses binary save data with one of these codecs and
// records the codec in a one-byte prefix, so every stored blob can be read
// back without configuration.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, pure Go by default, cgo
//     gozstd with the gozstd build tag
//   - S2 (format.CompressionS2): fastest, good for frequent autosaves
//   - LZ4 (format.CompressionLZ4): fast decode, length-prefixed blocks
//   - LZString (format.CompressionLZString): the lzs codec in byte-array
//     form, UTF-8 text only; no framing overhead on short values
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(save)
//
// Measure runs one round trip and reports sizes and timings, which the
// lzs stats command uses to compare codecs on a given file:
//
//	stats, err := compress.Measure(format.CompressionS2, data)
//	fmt.Printf("%s: %.1f%% saved\n", stats.Algorithm, stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool encoders and are safe
// for concurrent use.
package compress
