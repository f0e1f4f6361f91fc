package store

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/alphabet"
	"github.com/arloliu/lzs/compress"
	"github.com/arloliu/lzs/errs"
	"github.com/arloliu/lzs/format"
	"github.com/stretchr/testify/require"
)

var stringValues = []string{
	"",
	"Ayla",
	"☺ セーブ 🎮",
	strings.Repeat(`{"x":1,"y":2},`, 100),
}

var alphabets = []format.AlphabetType{
	format.AlphabetRaw,
	format.AlphabetUTF16,
	format.AlphabetBase64,
	format.AlphabetURIComponent,
	format.AlphabetBytes,
}

// TestStore_StringRoundTrip covers every alphabet on every backend
func TestStore_StringRoundTrip(t *testing.T) {
	ctx := context.Background()

	for backendName, b := range openBackends(t) {
		for _, alpha := range alphabets {
			t.Run(backendName+"/"+alpha.String(), func(t *testing.T) {
				st, err := New(b, WithTextAlphabet(alpha))
				require.NoError(t, err)

				for i, v := range stringValues {
					key := alpha.String() + "/" + string(rune('a'+i))
					require.NoError(t, st.SetString(ctx, key, v))

					got, err := st.GetString(ctx, key)
					require.NoError(t, err)
					require.Equal(t, v, got)
				}
			})
		}
	}
}

// TestStore_BlobRoundTrip covers every compression type on every backend
func TestStore_BlobRoundTrip(t *testing.T) {
	ctx := context.Background()
	blob := bytes.Repeat([]byte(`{"hero":"Ayla","hp":212,"items":["potion","ether"]}`), 30)

	for backendName, b := range openBackends(t) {
		for _, ct := range compress.Types() {
			t.Run(backendName+"/"+ct.String(), func(t *testing.T) {
				st, err := New(b, WithBlobCompression(ct))
				require.NoError(t, err)

				key := "blob/" + ct.String()
				require.NoError(t, st.SetBlob(ctx, key, blob))

				got, err := st.GetBlob(ctx, key)
				require.NoError(t, err)
				require.Equal(t, blob, got)

				raw, err := b.Get([]byte(key))
				require.NoError(t, err)
				require.Equal(t, kindBlob, raw[0])
				require.Equal(t, byte(ct), raw[1])
			})
		}
	}
}

func TestStore_BlobBinaryAndEmpty(t *testing.T) {
	ctx := context.Background()
	st, err := New(NewMemoryBackend(), WithBlobCompression(format.CompressionS2))
	require.NoError(t, err)

	binary := []byte{0x00, 0xff, 0x10, 0x80, 0x00}
	require.NoError(t, st.SetBlob(ctx, "bin", binary))
	got, err := st.GetBlob(ctx, "bin")
	require.NoError(t, err)
	require.Equal(t, binary, got)

	require.NoError(t, st.SetBlob(ctx, "empty", nil))
	got, err = st.GetBlob(ctx, "empty")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_LZStringBlobRejectsBinary(t *testing.T) {
	st, err := New(NewMemoryBackend(), WithBlobCompression(format.CompressionLZString))
	require.NoError(t, err)

	err = st.SetBlob(context.Background(), "bin", []byte{0xff, 0xfe})
	require.ErrorIs(t, err, errs.ErrInvalidText)
}

// TestStore_RecordsAreSelfDescribing reads values written under another config
func TestStore_RecordsAreSelfDescribing(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	writer, err := New(b, WithTextAlphabet(format.AlphabetBase64), WithBlobCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.NoError(t, writer.SetString(ctx, "name", "Ayla"))
	require.NoError(t, writer.SetBlob(ctx, "save", []byte("slot data slot data slot data")))

	reader, err := New(b)
	require.NoError(t, err)

	name, err := reader.GetString(ctx, "name")
	require.NoError(t, err)
	require.Equal(t, "Ayla", name)

	save, err := reader.GetBlob(ctx, "save")
	require.NoError(t, err)
	require.Equal(t, []byte("slot data slot data slot data"), save)

	raw, err := b.Get([]byte("name"))
	require.NoError(t, err)
	require.Equal(t, append([]byte{kindString, byte(format.AlphabetBase64)}, lzs.EncodeBase64("Ayla")...), raw)
}

func TestStore_InvalidRecords(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	st, err := New(b)
	require.NoError(t, err)

	require.NoError(t, st.SetString(ctx, "str", "x"))
	require.NoError(t, st.SetBlob(ctx, "blob", []byte("x")))
	require.NoError(t, b.Set([]byte("short"), []byte{kindBlob}))
	require.NoError(t, b.Set([]byte("badtype"), []byte{kindBlob, 0x7f, 1, 2}))
	require.NoError(t, b.Set([]byte("badalpha"), []byte{kindString, 0x7f, 1, 2}))

	_, err = st.GetBlob(ctx, "str")
	require.ErrorIs(t, err, errs.ErrInvalidRecord)

	_, err = st.GetString(ctx, "blob")
	require.ErrorIs(t, err, errs.ErrInvalidRecord)

	_, err = st.GetBlob(ctx, "short")
	require.ErrorIs(t, err, errs.ErrInvalidRecord)

	_, err = st.GetBlob(ctx, "badtype")
	require.ErrorIs(t, err, errs.ErrInvalidRecord)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = st.GetString(ctx, "badalpha")
	require.ErrorIs(t, err, errs.ErrInvalidAlphabet)
}

func TestStore_CorruptedString(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	st, err := New(b, WithTextAlphabet(format.AlphabetBytes))
	require.NoError(t, err)

	// selector 3 is never written by the encoder
	require.NoError(t, b.Set([]byte("bad"), []byte{kindString, byte(format.AlphabetBytes), 0xc0, 0x00}))

	_, err = st.GetString(ctx, "bad")
	require.ErrorIs(t, err, errs.ErrCorrupted)
}

func TestStore_NotFoundAndDelete(t *testing.T) {
	ctx := context.Background()

	for name, b := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			st, err := New(b)
			require.NoError(t, err)

			_, err = st.GetString(ctx, "nope")
			require.ErrorIs(t, err, errs.ErrNotFound)

			require.NoError(t, st.SetString(ctx, "k", "v"))
			require.NoError(t, st.Delete(ctx, "k"))

			_, err = st.GetString(ctx, "k")
			require.ErrorIs(t, err, errs.ErrNotFound)
		})
	}
}

func TestStore_ContextCancelled(t *testing.T) {
	b := NewMemoryBackend()
	st, err := New(b)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, st.SetString(ctx, "k", "v"), context.Canceled)
	require.ErrorIs(t, st.SetBlob(ctx, "k", []byte("v")), context.Canceled)
	require.ErrorIs(t, st.Delete(ctx, "k"), context.Canceled)

	_, err = st.GetString(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	_, err = st.GetBlob(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)

	require.Zero(t, b.Len())
}

func TestNew_Options(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New(NewMemoryBackend(), WithTextAlphabet(format.AlphabetType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidAlphabet)

	_, err = New(NewMemoryBackend(), WithBlobCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = New(NewMemoryBackend(), WithCodec(nil))
	require.Error(t, err)

	st, err := New(NewMemoryBackend(), WithCodec(lzs.New(lzs.WithCache(alphabet.NewCache()))))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	err = st.SetString(context.Background(), "k", "v")
	require.ErrorIs(t, err, errs.ErrClosed)
}
