// Package assets resolves asset files across configured root directories.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Library loads asset files from a prioritized list of root
// directories. Roots are searched in reverse order (last added =
// highest priority), so a user directory can shadow the stock assets.
type Library struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewLibrary creates a library over the given roots.
func NewLibrary(roots ...string) *Library {
	return &Library{
		roots: append([]string(nil), roots...),
		cache: NewCache(),
	}
}

// AddRoot appends an asset root directory with highest priority.
func (l *Library) AddRoot(dir string) {
	l.mu.Lock()
	l.roots = append(l.roots, dir)
	l.mu.Unlock()
}

// Load reads an asset by its path relative to any root.
func (l *Library) Load(rel string) ([]byte, error) {
	if data, ok := l.cache.Get(rel); ok {
		return data, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(l.roots[i], rel))
		if err == nil {
			l.cache.Set(rel, data)
			return data, nil
		}
	}

	return nil, fmt.Errorf("asset not found: %s", rel)
}

// FindDir resolves a directory (such as a circuit folder) across roots.
func (l *Library) FindDir(rel string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.roots) - 1; i >= 0; i-- {
		full := filepath.Join(l.roots[i], rel)
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			return full, nil
		}
	}

	return "", fmt.Errorf("asset directory not found: %s", rel)
}

// Clear drops all cached file contents. Roots are unchanged.
func (l *Library) Clear() {
	l.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
