package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabetType_String(t *testing.T) {
	tests := []struct {
		alphabet AlphabetType
		expected string
	}{
		{AlphabetRaw, "Raw"},
		{AlphabetUTF16, "UTF16"},
		{AlphabetBase64, "Base64"},
		{AlphabetURIComponent, "URIComponent"},
		{AlphabetBytes, "Bytes"},
		{AlphabetType(0xff), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.alphabet.String())
		})
	}
}

func TestParseAlphabet(t *testing.T) {
	for _, name := range []string{"raw", "utf16", "base64", "uri", "bytes"} {
		a, ok := ParseAlphabet(name)
		require.True(t, ok, name)
		require.NotEqual(t, "Unknown", a.String())
	}

	_, ok := ParseAlphabet("Base64")
	require.False(t, ok)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "LZString", CompressionLZString.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
