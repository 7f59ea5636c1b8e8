package cache

import (
	"context"
	"sync"
	"time"
)

type memoryCache struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	keys   map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemory is the in-process fallback used when no redis address is
// configured, and the double the service tests run against. State is
// lost on restart.
func NewMemory() Cache {
	return &memoryCache{
		hashes: make(map[string]map[string]string),
		keys:   make(map[string]memoryEntry),
	}
}

func (c *memoryCache) HGet(_ context.Context, key, field string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fields, ok := c.hashes[key]
	if !ok {
		return "", false, nil
	}
	val, ok := fields[field]
	return val, ok, nil
}

func (c *memoryCache) HSet(_ context.Context, key, field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	fields, ok := c.hashes[key]
	if !ok {
		fields = make(map[string]string)
		c.hashes[key] = fields
	}
	fields[field] = value
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.keys[key]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.keys, key)
		c.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *memoryCache) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.keys[key] = entry
	c.mu.Unlock()
	return nil
}
