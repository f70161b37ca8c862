package venue

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long venue entries stay valid. Venues change between
// seasons, rarely within one.
const DefaultTTL = 7 * 24 * time.Hour

// Cache memoizes venue lookups per team with a TTL. A stored nil records a
// negative lookup. Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*Info
	cachedAt map[string]time.Time
	ttl      time.Duration
}

// NewCache creates a cache with the default TTL.
func NewCache() *Cache {
	return NewCacheWithTTL(DefaultTTL)
}

// NewCacheWithTTL creates a cache with an explicit TTL.
func NewCacheWithTTL(ttl time.Duration) *Cache {
	return &Cache{
		entries:  make(map[string]*Info),
		cachedAt: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get retrieves a cached entry. ok is false when the team was never looked
// up or the entry expired; a true ok with nil info is a cached negative
// result.
func (c *Cache) Get(team string) (*Info, bool) {
	key := cacheKey(team)

	c.mu.Lock()
	defer c.mu.Unlock()

	cachedTime, exists := c.cachedAt[key]
	if !exists {
		return nil, false
	}
	if time.Since(cachedTime) > c.ttl {
		delete(c.entries, key)
		delete(c.cachedAt, key)
		return nil, false
	}
	return c.entries[key], true
}

// Set stores an entry for a team; nil records a negative lookup.
func (c *Cache) Set(team string, info *Info) {
	key := cacheKey(team)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = info
	c.cachedAt[key] = time.Now()
}

// CleanExpired removes expired entries and returns how many were dropped.
func (c *Cache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := time.Now()
	for key, cachedTime := range c.cachedAt {
		if now.Sub(cachedTime) > c.ttl {
			delete(c.entries, key)
			delete(c.cachedAt, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(team string) string {
	return strings.ToLower(strings.TrimSpace(team))
}
