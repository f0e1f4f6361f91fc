// Package asset reads and writes JSON asset payloads that may be stored in
// the lzs Base64 form.
//
// A packed payload is the three bytes "LZS" followed by the Base64 form of
// the JSON text. Anything else is taken to be plain JSON, so packed and
// unpacked assets can live side by side in one bundle.
package asset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/errs"
)

// Header marks a packed payload.
const Header = "LZS"

// IsPacked reports whether data starts with Header.
func IsPacked(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Header))
}

// Encode renders JSON text as a packed payload.
func Encode(jsonText []byte) []byte {
	encoded := lzs.EncodeBase64(string(jsonText))

	out := make([]byte, 0, len(Header)+len(encoded))
	out = append(out, Header...)
	out = append(out, encoded...)

	return out
}

// Decode returns the JSON text held by data.
//
// Packed payloads are decompressed; other payloads are returned unchanged.
//
// Returns:
//   - []byte: JSON text
//   - error: errs.ErrAssetDecode wrapping the codec error when a packed payload is invalid
func Decode(data []byte) ([]byte, error) {
	if !IsPacked(data) {
		return data, nil
	}

	text, err := lzs.DecodeBase64(string(data[len(Header):]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrAssetDecode, err)
	}

	return []byte(text), nil
}

// Marshal encodes v as JSON and packs it.
func Marshal(v any) ([]byte, error) {
	text, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("asset: marshal: %w", err)
	}

	return Encode(text), nil
}

// Unmarshal decodes a packed or plain payload and parses it into v.
func Unmarshal(data []byte, v any) error {
	text, err := Decode(data)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(text, v); err != nil {
		return fmt.Errorf("asset: unmarshal: %w", err)
	}

	return nil
}
