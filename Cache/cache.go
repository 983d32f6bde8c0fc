package Cache

import (
	"sync"
)

// SettingsCache keeps the last known value of every setting in memory so reads
// never touch the disk.
type SettingsCache struct {
	cache map[string]string
	mutex sync.RWMutex
}

// NewSettingsCache creates an empty settings cache
func NewSettingsCache() *SettingsCache {
	return &SettingsCache{
		cache: make(map[string]string),
	}
}

// Get retrieves a setting from the cache
func (c *SettingsCache) Get(key string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	value, found := c.cache[key]
	return value, found
}

// Set stores a setting in the cache
func (c *SettingsCache) Set(key, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.cache[key] = value
}

// Replace swaps the whole cache for values, typically after reloading a file.
func (c *SettingsCache) Replace(values map[string]string) {
	fresh := make(map[string]string, len(values))
	for k, v := range values {
		fresh[k] = v
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.cache = fresh
}

// Snapshot returns a copy of every cached setting.
func (c *SettingsCache) Snapshot() map[string]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	out := make(map[string]string, len(c.cache))
	for k, v := range c.cache {
		out[k] = v
	}
	return out
}
