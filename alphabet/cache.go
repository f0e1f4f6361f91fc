package alphabet

import (
	"sync"

	"github.com/arloliu/lzs/internal/hash"
)

// Cache memoizes reverse tables by alphabet.
//
// Concurrent first use of an alphabet may build its table more than once;
// every build yields an identical table and one of them wins.
type Cache struct {
	mu     sync.RWMutex
	tables map[uint64]*Table
}

var defaultCache = NewCache()

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[uint64]*Table)}
}

// Default returns the process-wide cache used by the package-level codec
// functions.
func Default() *Cache {
	return defaultCache
}

// Table returns the reverse table of alphabet, building it on first use.
func (c *Cache) Table(alphabet string) (*Table, error) {
	id := hash.ID(alphabet)

	c.mu.RLock()
	t, ok := c.tables[id]
	c.mu.RUnlock()

	if ok && t.alphabet == alphabet {
		return t, nil
	}

	t, err := NewTable(alphabet)
	if err != nil {
		return nil, err
	}

	if ok {
		// hash collision with a different alphabet: serve uncached
		return t, nil
	}

	c.mu.Lock()
	if cached, exists := c.tables[id]; exists && cached.alphabet == alphabet {
		t = cached
	} else if !exists {
		c.tables[id] = t
	}
	c.mu.Unlock()

	return t, nil
}

// MustTable is like Table but panics on an invalid alphabet. It is meant for
// the built-in alphabets.
func (c *Cache) MustTable(alphabet string) *Table {
	t, err := c.Table(alphabet)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}

// Reset drops every cached table.
func (c *Cache) Reset() {
	c.mu.Lock()
	clear(c.tables)
	c.mu.Unlock()
}
