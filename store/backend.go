// Package store persists application values under compact encodings.
//
// A Store sits on a Backend (an in-memory map or a pebble database) and
// offers two kinds of values:
//
//   - strings, compressed with the lzs codec in a configurable form
//     (UTF-16 by default, which keeps values printable)
//   - blobs, compressed with any compress.Codec and prefixed with a one-byte
//     compression type so reads need no configuration
package store

import (
	"slices"
	"sync"

	"github.com/arloliu/lzs/errs"
)

// Backend is a byte key/value store.
//
// Implementations must be safe for concurrent use. Get returns
// errs.ErrNotFound for missing keys; after Close every method returns
// errs.ErrClosed. Set must not retain value after it returns.
type Backend interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Close() error
}

// MemoryBackend is a Backend holding everything in a map.
type MemoryBackend struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *MemoryBackend) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, errs.ErrClosed
	}

	v, ok := m.data[string(key)]
	if !ok {
		return nil, errs.ErrNotFound
	}

	return slices.Clone(v), nil
}

// Set stores a copy of value under key.
func (m *MemoryBackend) Set(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errs.ErrClosed
	}
	m.data[string(key)] = slices.Clone(value)

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *MemoryBackend) Delete(key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errs.ErrClosed
	}
	delete(m.data, string(key))

	return nil
}

// Len returns the number of stored keys.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

// Close releases the map. Closing twice is not an error.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil

	return nil
}
