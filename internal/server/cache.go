package server

import (
	"strings"
	"sync"
	"time"
)

type cacheItem struct {
	Data        []byte
	ContentType string
	Expiration  time.Time
}

// renderCache keeps rendered axes for a fixed time. A non-positive ttl
// disables it.
type renderCache struct {
	mu    sync.Mutex
	items map[string]*cacheItem
	ttl   time.Duration
	now   func() time.Time
}

func newRenderCache(ttl time.Duration) *renderCache {
	return &renderCache{
		items: make(map[string]*cacheItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *renderCache) get(key string) (*cacheItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if !c.now().Before(item.Expiration) {
		delete(c.items, key)
		return nil, false
	}
	return item, true
}

func (c *renderCache) set(key string, data []byte, contentType string) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem{
		Data:        data,
		ContentType: contentType,
		Expiration:  c.now().Add(c.ttl),
	}
}

func (c *renderCache) deletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}
