package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/internal/options"
	"github.com/cockroachdb/pebble/v2"
	"github.com/cockroachdb/pebble/v2/vfs"
)

// PebbleBackend is a Backend on a pebble database.
type PebbleBackend struct {
	mu         sync.RWMutex // held exclusively only by Close
	db         *pebble.DB
	syncWrites bool
	closed     bool
}

var _ Backend = (*PebbleBackend)(nil)

type pebbleConfig struct {
	opts       *pebble.Options
	syncWrites bool
}

// PebbleOption configures OpenPebble.
type PebbleOption = options.Option[*pebbleConfig]

// WithInMemoryFS keeps the database in memory. dir is then only a name.
func WithInMemoryFS() PebbleOption {
	return options.NoError(func(c *pebbleConfig) {
		c.opts.FS = vfs.NewMem()
	})
}

// WithSync sets whether writes wait for the WAL to reach stable storage.
// The default is true.
func WithSync(enabled bool) PebbleOption {
	return options.NoError(func(c *pebbleConfig) {
		c.syncWrites = enabled
	})
}

// WithCacheSize sets the pebble block cache size in bytes.
func WithCacheSize(size int64) PebbleOption {
	return options.New(func(c *pebbleConfig) error {
		if size <= 0 {
			return fmt.Errorf("store: pebble cache size must be positive, got %d", size)
		}
		c.opts.CacheSize = size

		return nil
	})
}

// OpenPebble opens or creates a pebble database in dir.
//
// Parameters:
//   - dir: Database directory
//   - opts: Backend options
//
// Returns:
//   - *PebbleBackend: The opened backend
//   - error: An option error or the pebble open error
func OpenPebble(dir string, opts ...PebbleOption) (*PebbleBackend, error) {
	cfg := &pebbleConfig{
		opts:       &pebble.Options{},
		syncWrites: true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	db, err := pebble.Open(dir, cfg.opts)
	if err != nil {
		return nil, fmt.Errorf("store: open pebble %s: %w", dir, err)
	}

	return &PebbleBackend{db: db, syncWrites: cfg.syncWrites}, nil
}

func (p *PebbleBackend) writeOptions() *pebble.WriteOptions {
	if p.syncWrites {
		return pebble.Sync
	}

	return pebble.NoSync
}

// Get returns a copy of the value stored under key.
func (p *PebbleBackend) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, errs.ErrClosed
	}

	v, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: pebble get: %w", err)
	}
	defer closer.Close()

	// v is only valid until closer is closed
	return slices.Clone(v), nil
}

// Set stores value under key.
func (p *PebbleBackend) Set(key, value []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errs.ErrClosed
	}

	if err := p.db.Set(key, value, p.writeOptions()); err != nil {
		return fmt.Errorf("store: pebble set: %w", err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *PebbleBackend) Delete(key []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errs.ErrClosed
	}

	if err := p.db.Delete(key, p.writeOptions()); err != nil {
		return fmt.Errorf("store: pebble delete: %w", err)
	}

	return nil
}

// Close closes the database. Closing twice is not an error.
func (p *PebbleBackend) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.db.Close()
}
