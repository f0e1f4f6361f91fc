// Package lzs provides a deterministic LZ-style compression codec for text,
// wire compatible with the lz-string family of encoders.
//
// The codec targets JSON asset bundles and persisted save values: small to
// medium strings that must be stored or shipped inside text-only channels.
// Output is self-describing (no out-of-band length or dictionary) and every
// call builds its dictionary from scratch.
//
// # Output Forms
//
//   - Base64: 6-bit symbols from the standard Base64 alphabet, '='-padded
//   - URIComponent: 6-bit symbols from a URI-safe alphabet, unpadded
//   - UTF16: 15-bit units offset by 32, with a trailing space
//   - Raw: full 16-bit units as []uint16
//   - Bytes: raw units as big-endian byte pairs
//
// # Basic Usage
//
//	packed := lzs.EncodeBase64(`{"level":3,"name":"Crypt of Ages"}`)
//	text, err := lzs.DecodeBase64(packed)
//	if err != nil {
//	    // errs.ErrEmptyInput, errs.ErrTruncated or errs.ErrCorrupted
//	}
//
// The package-level functions use a shared Codec backed by the process-wide
// alphabet cache. Use New to give a component its own cache or buffer
// sizing, and Codec.Encode / Codec.Decode to select a form at runtime.
//
// # Text Model
//
// Text is processed as UTF-16 code units. Go strings are converted with
// unicode/utf16, so invalid UTF-8 in the input is replaced by U+FFFD and
// unpaired surrogates in decoded output become U+FFFD.
package lzs

var defaultCodec = New()

// EncodeBase64 compresses text with the default codec. See Codec.EncodeBase64.
func EncodeBase64(text string) string {
	return defaultCodec.EncodeBase64(text)
}

// DecodeBase64 decompresses s with the default codec. See Codec.DecodeBase64.
func DecodeBase64(s string) (string, error) {
	return defaultCodec.DecodeBase64(s)
}

// EncodeUTF16 compresses text with the default codec. See Codec.EncodeUTF16.
func EncodeUTF16(text string) string {
	return defaultCodec.EncodeUTF16(text)
}

// DecodeUTF16 decompresses s with the default codec. See Codec.DecodeUTF16.
func DecodeUTF16(s string) (string, error) {
	return defaultCodec.DecodeUTF16(s)
}

// EncodeURIComponent compresses text with the default codec.
func EncodeURIComponent(text string) string {
	return defaultCodec.EncodeURIComponent(text)
}

// DecodeURIComponent decompresses s with the default codec.
func DecodeURIComponent(s string) (string, error) {
	return defaultCodec.DecodeURIComponent(s)
}

// EncodeRaw compresses text with the default codec.
func EncodeRaw(text string) []uint16 {
	return defaultCodec.EncodeRaw(text)
}

// DecodeRaw decompresses units with the default codec.
func DecodeRaw(units []uint16) (string, error) {
	return defaultCodec.DecodeRaw(units)
}

// EncodeBytes compresses text with the default codec.
func EncodeBytes(text string) []byte {
	return defaultCodec.EncodeBytes(text)
}

// DecodeBytes decompresses b with the default codec.
func DecodeBytes(b []byte) (string, error) {
	return defaultCodec.DecodeBytes(b)
}
