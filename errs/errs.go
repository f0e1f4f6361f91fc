// Package errs defines the sentinel errors shared by the lzs packages.
//
// Callers compare against these values with errors.Is; functions that add
// context wrap them with fmt.Errorf("...: %w", err).
package errs

import "errors"

// Decoder outcomes.
var (
	// ErrEmptyInput is returned when a decoder receives a literal empty input.
	// It is reported before any stream validation takes place.
	ErrEmptyInput = errors.New("lzs: empty compressed input")

	// ErrTruncated is returned when the decoder runs out of units before
	// reaching the end-of-stream marker.
	ErrTruncated = errors.New("lzs: truncated stream")

	// ErrCorrupted is returned when a code references neither an existing
	// dictionary entry nor the next code to be assigned.
	ErrCorrupted = errors.New("lzs: corrupted stream")

	// ErrInvalidByteLength is returned when a byte-array payload has an odd length.
	ErrInvalidByteLength = errors.New("lzs: byte payload length must be even")
)

// Codec selection and input validation.
var (
	ErrInvalidAlphabet    = errors.New("lzs: invalid alphabet")
	ErrInvalidCompression = errors.New("lzs: invalid compression type")
	ErrInvalidText        = errors.New("lzs: input is not valid UTF-8 text")
)

// Asset and storage errors.
var (
	ErrAssetDecode   = errors.New("asset: failed to decode compressed payload")
	ErrNotFound      = errors.New("store: key not found")
	ErrInvalidRecord = errors.New("store: invalid record")
	ErrClosed        = errors.New("store: closed")
)
