package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/arloliu/lzs/internal/hash"
	"github.com/arloliu/lzs/internal/options"
	"github.com/dgryski/go-tinylfu"
)

// DefaultCacheSize is the number of decoded payloads a Loader keeps by default.
const DefaultCacheSize = 256

// Loader reads assets from a file system and keeps recently decoded JSON
// text in a TinyLFU cache keyed by asset name.
//
// A Loader is safe for concurrent use.
type Loader struct {
	fsys fs.FS

	cacheSize       int
	literalFallback bool
	logger          *slog.Logger

	mu     sync.Mutex
	cache  *tinylfu.T[string, []byte]
	hits   uint64
	misses uint64
}

// LoaderOption configures a Loader.
type LoaderOption = options.Option[*Loader]

// WithCacheSize sets the number of decoded payloads to keep. A size <= 0
// disables caching.
func WithCacheSize(n int) LoaderOption {
	return options.NoError(func(l *Loader) {
		l.cacheSize = n
	})
}

// WithLiteralFallback makes Load parse the bytes after the header as plain
// JSON when a packed payload fails to decode, instead of returning the
// decode error. Some exporters write the header in front of uncompressed
// JSON.
func WithLiteralFallback(enabled bool) LoaderOption {
	return options.NoError(func(l *Loader) {
		l.literalFallback = enabled
	})
}

// WithLogger sets the logger used to report fallbacks. A nil logger keeps
// slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return options.NoError(func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	})
}

// LoaderStats are cumulative cache counters of a Loader.
type LoaderStats struct {
	Hits   uint64
	Misses uint64
}

// NewLoader creates a loader over fsys.
//
// Example:
//
//	loader := asset.NewLoader(os.DirFS("assets"), asset.WithCacheSize(64))
//	var level Level
//	err := loader.Load(ctx, "levels/01.json", &level)
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:      fsys,
		cacheSize: DefaultCacheSize,
		logger:    slog.Default(),
	}
	// loader options never fail
	_ = options.Apply(l, opts...)

	if l.cacheSize > 0 {
		l.cache = tinylfu.New[string, []byte](l.cacheSize, l.cacheSize*10, hash.ID)
	}

	return l
}

// Load reads the asset called name, decodes it and parses it into v.
//
// Parameters:
//   - ctx: Checked before the file system is touched
//   - name: Slash-separated path within the loader's file system
//   - v: JSON destination
//
// Returns:
//   - error: ctx.Err(), a file system error, errs.ErrAssetDecode, or a JSON error
func (l *Loader) Load(ctx context.Context, name string, v any) error {
	text, err := l.Text(ctx, name)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(text, v); err != nil {
		return fmt.Errorf("asset %s: %w", name, err)
	}

	return nil
}

// Text returns the decoded JSON text of the asset called name.
//
// The returned slice is shared with the cache and must not be modified.
func (l *Loader) Text(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if text, ok := l.lookup(name); ok {
		return text, nil
	}

	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", name, err)
	}

	text, err := Decode(raw)
	if err != nil {
		if !l.literalFallback {
			return nil, fmt.Errorf("asset %s: %w", name, err)
		}
		l.logger.Warn("assetDecodeFallback", "name", name, "err", err)
		text = raw[len(Header):]
	}

	l.store(name, text)

	return text, nil
}

// Stats returns the cache counters.
func (l *Loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LoaderStats{Hits: l.hits, Misses: l.misses}
}

func (l *Loader) lookup(name string) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cache == nil {
		l.misses++
		return nil, false
	}

	text, ok := l.cache.Get(name)
	if ok {
		l.hits++
	} else {
		l.misses++
	}

	return text, ok
}

func (l *Loader) store(name string, text []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cache != nil {
		l.cache.Add(name, text)
	}
}
