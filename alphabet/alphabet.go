// Package alphabet defines the 6-bit symbol alphabets of the lzs codec and a
// cache of their reverse lookup tables.
//
// The forward direction (value to symbol) is plain indexing into the
// alphabet string. The reverse direction (symbol to value) needs a table;
// tables are built on first use and memoized in a Cache keyed by the xxHash64
// of the alphabet.
package alphabet

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/lzs/errs"
)

const (
	// Base64 is the standard Base64 alphabet. The 65th symbol '=' is only
	// used as padding.
	Base64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

	// URIComponent is a URI-safe alphabet: '-' and '$' replace '/' and '='.
	URIComponent = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"
)

// Size is the number of symbols addressable by a 6-bit value.
const Size = 64

// Table maps symbols of one alphabet back to their values.
//
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	alphabet string
	values   map[rune]uint16
}

// NewTable builds the reverse table of alphabet.
//
// Parameters:
//   - alphabet: At least Size distinct symbols; symbols beyond Size are kept in the table
//
// Returns:
//   - *Table: The reverse lookup table
//   - error: errs.ErrInvalidAlphabet if alphabet is too short, not valid UTF-8, or repeats a symbol
func NewTable(alphabet string) (*Table, error) {
	if !utf8.ValidString(alphabet) {
		return nil, fmt.Errorf("%w: not valid UTF-8", errs.ErrInvalidAlphabet)
	}

	n := utf8.RuneCountInString(alphabet)
	if n < Size {
		return nil, fmt.Errorf("%w: %d symbols, need at least %d", errs.ErrInvalidAlphabet, n, Size)
	}

	values := make(map[rune]uint16, n)
	i := 0
	for _, r := range alphabet {
		if _, dup := values[r]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", errs.ErrInvalidAlphabet, r)
		}
		values[r] = uint16(i) //nolint:gosec
		i++
	}

	return &Table{alphabet: alphabet, values: values}, nil
}

// Value returns the value of symbol r, or 0 if r is not in the alphabet.
func (t *Table) Value(r rune) uint16 {
	return t.values[r]
}

// Contains reports whether r is a symbol of the alphabet.
func (t *Table) Contains(r rune) bool {
	_, ok := t.values[r]
	return ok
}

// Alphabet returns the alphabet the table was built from.
func (t *Table) Alphabet() string {
	return t.alphabet
}
