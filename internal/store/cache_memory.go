package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

// MemoryCache is a process-local cache. Values are deep-copied on the way in
// and out so callers never share nodes with it.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]any)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (any, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	return tree.Clone(v), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = tree.Clone(value)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *MemoryCache) Close() error {
	return nil
}
