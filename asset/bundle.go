package asset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"

	"github.com/arloliu/lzs/internal/hash"
	"github.com/bmatcuk/doublestar/v4"
)

// Bundle is one packed asset produced by Pack.
type Bundle struct {
	Name     string // path within the source file system
	Original int    // size of the source file in bytes
	Packed   int    // size of Data in bytes
	Data     []byte // packed payload
	Sum      uint64 // xxHash64 of Data
}

// Pack packs every file of fsys matching pattern.
//
// The pattern uses doublestar syntax, so "**/*.json" selects JSON files at
// any depth. Each file must hold valid JSON, plain or already packed; the
// JSON is compacted before packing. Bundles are returned sorted by name.
//
// Parameters:
//   - fsys: Source file system
//   - pattern: doublestar glob, for example "levels/**/*.json"
//
// Returns:
//   - []Bundle: One bundle per matched file
//   - error: Invalid pattern, unreadable file, undecodable packed file or invalid JSON
func Pack(fsys fs.FS, pattern string) ([]Bundle, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("asset: invalid pattern %q", pattern)
	}

	names, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("asset: glob %q: %w", pattern, err)
	}
	slices.Sort(names)

	bundles := make([]Bundle, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", name, err)
		}

		text, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", name, err)
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, text); err != nil {
			return nil, fmt.Errorf("asset %s: invalid JSON: %w", name, err)
		}

		data := Encode(compact.Bytes())
		bundles = append(bundles, Bundle{
			Name:     name,
			Original: len(raw),
			Packed:   len(data),
			Data:     data,
			Sum:      hash.BytesID(data),
		})
	}

	return bundles, nil
}
