package asset

import (
	"testing"

	"github.com/arloliu/lzs/errs"
	"github.com/stretchr/testify/require"
)

type level struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Tiles []int  `json:"tiles"`
}

func TestEncode(t *testing.T) {
	require.Equal(t, "LZSBIUwNmD2A0AEDukBOYAmQ===", string(Encode([]byte("Hello, world"))))
}

func TestMarshalUnmarshal(t *testing.T) {
	in := level{Name: "Crypt of Ages", Depth: 3, Tiles: []int{0, 0, 1, 1, 2, 2, 1, 1, 0, 0}}

	data, err := Marshal(in)
	require.NoError(t, err)
	require.True(t, IsPacked(data))

	var out level
	require.NoError(t, Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestUnmarshal_Plain(t *testing.T) {
	var out level
	require.NoError(t, Unmarshal([]byte(`{"name":"plain","depth":1}`), &out))
	require.Equal(t, "plain", out.Name)
	require.Equal(t, 1, out.Depth)
}

func TestUnmarshal_BadPayload(t *testing.T) {
	var out level

	err := Unmarshal([]byte("LZS"), &out)
	require.ErrorIs(t, err, errs.ErrAssetDecode)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	err = Unmarshal([]byte(`LZS{"hp":12}`), &out)
	require.ErrorIs(t, err, errs.ErrAssetDecode)
	require.ErrorIs(t, err, errs.ErrCorrupted)

	err = Unmarshal([]byte(`{"name":`), &out)
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrAssetDecode)
}

func TestMarshal_Unsupported(t *testing.T) {
	_, err := Marshal(make(chan int))
	require.Error(t, err)
}

func TestDecode_PassThrough(t *testing.T) {
	plain := []byte(`[1,2,3]`)
	got, err := Decode(plain)
	require.NoError(t, err)
	require.Equal(t, plain, got)
}
