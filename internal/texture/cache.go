package texture

import (
	"image"
	"sort"
	"sync"
)

// Cache holds synthesized textures for the scene lifetime, keyed by
// node name. Entries are written once during scene construction and
// read-only afterward.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*image.NRGBA)}
}

// Get returns the cached texture for name, or nil.
func (c *Cache) Get(name string) *image.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[name]
}

// GetOrCreate returns the cached texture for name, running build and
// caching its result on the first request.
func (c *Cache) GetOrCreate(name string, build func() *image.NRGBA) *image.NRGBA {
	c.mu.RLock()
	if img, ok := c.items[name]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := build()

	c.mu.Lock()
	defer c.mu.Unlock()
	if prior, ok := c.items[name]; ok {
		return prior
	}
	c.items[name] = img
	return img
}

// Names returns the sorted names of all cached textures.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
