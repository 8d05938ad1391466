// Package assets resolves shader and texture files across disk directories
// and the embedded defaults.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when no source has the requested file.
var ErrNotFound = errors.New("asset not found")

type source struct {
	fsys fs.FS
	dir  string // disk directory, empty for non-disk sources
}

// Manager loads files from an ordered list of sources.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager whose lowest-priority source is fallback
// (usually the embedded defaults). fallback may be nil.
func NewManager(fallback fs.FS) *Manager {
	m := &Manager{cache: NewCache()}
	if fallback != nil {
		m.sources = append(m.sources, source{fsys: fallback})
	}
	return m
}

// AddDir adds a disk directory. Missing directories are skipped without error
// so that optional override directories can be configured unconditionally.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.sources = append(m.sources, source{fsys: os.DirFS(dir), dir: dir})
	m.mu.Unlock()
	return nil
}

// Load returns the contents of name, a slash-separated path such as
// "shaders/Basic.shader".
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i].fsys, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Resolve returns the disk path of name in the highest-priority disk source
// that has it. Embedded files have no disk path and report false.
func (m *Manager) Resolve(name string) (string, bool) {
	name = path.Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		if _, err := fs.Stat(src.fsys, name); err != nil {
			continue
		}
		if src.dir == "" {
			return "", false
		}
		return filepath.Join(src.dir, filepath.FromSlash(name)), true
	}
	return "", false
}

// Invalidate drops name from the cache so the next Load reads it again.
func (m *Manager) Invalidate(name string) {
	m.cache.Delete(path.Clean(name))
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string][]byte)}
}

// Get retrieves an item.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete removes an item.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
