// Package hash provides the 64-bit identifiers used for cache keys.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// It keys reverse-alphabet tables and serves as the hasher of
// string-keyed tinylfu caches.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// BytesID computes the xxHash64 of the given byte slice.
//
// It fingerprints packed asset bundles.
func BytesID(data []byte) uint64 {
	return xxhash.Sum64(data)
}
