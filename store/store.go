package store

import (
	"context"
	"fmt"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/compress"
	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/format"
	"github.com/arloliu/lzs/internal/options"
	"github.com/arloliu/lzs/internal/pool"
)

// Record kinds. Every record starts with a kind byte followed by the
// alphabet or compression type the payload was written with.
const (
	kindString byte = 's'
	kindBlob   byte = 'b'

	recordHeaderSize = 2
)

// Store reads and writes compressed values on a Backend.
//
// Records are self-describing: changing the configured alphabet or
// compression only affects new writes. A Store is safe for concurrent use.
type Store struct {
	backend         Backend
	codec           *lzs.Codec
	textAlphabet    format.AlphabetType
	blobCompression format.CompressionType
}

// Option configures a Store.
type Option = options.Option[*Store]

// WithTextAlphabet sets the lzs form used for string values.
func WithTextAlphabet(alpha format.AlphabetType) Option {
	return options.New(func(s *Store) error {
		switch alpha {
		case format.AlphabetRaw, format.AlphabetUTF16, format.AlphabetBase64,
			format.AlphabetURIComponent, format.AlphabetBytes:
			s.textAlphabet = alpha
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidAlphabet, alpha)
		}
	})
}

// WithBlobCompression sets the codec used for blob values.
func WithBlobCompression(compression format.CompressionType) Option {
	return options.New(func(s *Store) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		s.blobCompression = compression

		return nil
	})
}

// WithCodec sets the lzs codec used for string values.
func WithCodec(codec *lzs.Codec) Option {
	return options.New(func(s *Store) error {
		if codec == nil {
			return fmt.Errorf("store: nil codec")
		}
		s.codec = codec

		return nil
	})
}

// New creates a store on backend.
//
// Defaults: UTF-16 strings, zstd blobs, the package-level lzs codec
// settings.
//
// Example:
//
//	st, err := store.New(store.NewMemoryBackend(), store.WithBlobCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//	err = st.SetString(ctx, "slot/1/name", "Ayla")
func New(backend Backend, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("store: nil backend")
	}

	s := &Store{
		backend:         backend,
		codec:           lzs.New(),
		textAlphabet:    format.AlphabetUTF16,
		blobCompression: format.CompressionZstd,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// SetString compresses value with the configured alphabet and stores it.
func (s *Store) SetString(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := s.codec.Encode(s.textAlphabet, value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}

	return s.put(key, kindString, byte(s.textAlphabet), payload)
}

// GetString returns the string stored under key.
//
// Returns:
//   - string: The decompressed value
//   - error: errs.ErrNotFound, errs.ErrInvalidRecord for a non-string record, or a codec error
func (s *Store) GetString(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	typ, payload, err := s.get(key, kindString)
	if err != nil {
		return "", err
	}

	value, err := s.codec.Decode(format.AlphabetType(typ), payload)
	if err != nil {
		return "", fmt.Errorf("store: decode %s: %w", key, err)
	}

	return value, nil
}

// SetBlob compresses value with the configured codec and stores it.
func (s *Store) SetBlob(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	codec, err := compress.GetCodec(s.blobCompression)
	if err != nil {
		return err
	}

	payload, err := codec.Compress(value)
	if err != nil {
		return fmt.Errorf("store: compress %s: %w", key, err)
	}

	return s.put(key, kindBlob, byte(s.blobCompression), payload)
}

// GetBlob returns the blob stored under key, decompressed with the codec
// recorded in the blob's header.
func (s *Store) GetBlob(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	typ, payload, err := s.get(key, kindBlob)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(format.CompressionType(typ))
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w: %w", key, errs.ErrInvalidRecord, err)
	}

	value, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("store: decompress %s: %w", key, err)
	}

	return value, nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.backend.Delete([]byte(key)); err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}

	return nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) put(key string, kind, typ byte, payload []byte) error {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	buf.Grow(recordHeaderSize + len(payload))
	buf.MustWriteByte(kind)
	buf.MustWriteByte(typ)
	buf.MustWrite(payload)

	// backends copy the value, so buf can return to the pool
	if err := s.backend.Set([]byte(key), buf.Bytes()); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}

	return nil
}

func (s *Store) get(key string, kind byte) (byte, []byte, error) {
	record, err := s.backend.Get([]byte(key))
	if err != nil {
		return 0, nil, fmt.Errorf("store: get %s: %w", key, err)
	}

	if len(record) < recordHeaderSize {
		return 0, nil, fmt.Errorf("store: %s: %w: %d-byte record", key, errs.ErrInvalidRecord, len(record))
	}
	if record[0] != kind {
		return 0, nil, fmt.Errorf("store: %s: %w: kind %q, want %q", key, errs.ErrInvalidRecord, record[0], kind)
	}

	return record[1], record[recordHeaderSize:], nil
}
