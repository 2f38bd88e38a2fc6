package cache

import (
	"sync"
	"time"

	"github.com/lpserve/lpserve/internal/store"
)

type pageEntry struct {
	page       *store.LandingPage
	insertedAt time.Time
}

// PageCache is a TTL-bounded, process-local cache of landing pages by slug.
// Staleness is evaluated at read time; nothing is actively swept, and a
// stale entry stays in place until overwritten or invalidated. There is no
// size bound: the cache grows to the number of distinct slugs requested
// within the process lifetime.
type PageCache struct {
	mutex   sync.RWMutex
	entries map[string]pageEntry
	ttl     time.Duration

	// ability to inject the clock (for unit testing of TTL expiry)
	NowFunc func() time.Time
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		entries: make(map[string]pageEntry),
		ttl:     ttl,
		NowFunc: time.Now,
	}
}

// Get returns the cached page for slug if present and fresh.
// A stale entry yields a miss but is not removed.
func (c *PageCache) Get(slug string) (*store.LandingPage, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[slug]
	if !ok {
		return nil, false
	}
	if c.NowFunc().Sub(entry.insertedAt) >= c.ttl {
		return nil, false
	}
	return entry.page, true
}

// Set overwrites the entry for slug with the given page and the current time.
func (c *PageCache) Set(slug string, page *store.LandingPage) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[slug] = pageEntry{
		page:       page,
		insertedAt: c.NowFunc(),
	}
}

// Invalidate removes the entry for slug, reporting whether it existed.
func (c *PageCache) Invalidate(slug string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, existed := c.entries[slug]
	delete(c.entries, slug)
	return existed
}

// InvalidateAll clears every entry.
func (c *PageCache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]pageEntry)
}

func (c *PageCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}
