// Package cache provides the two-level in-memory TTL cache shared by the
// pipeline orchestrators: a document space keyed by case tid and a query
// space keyed by normalized-query hash. Entries expire after a fixed TTL
// and are purged lazily on the read that finds them expired; there is no
// background sweeper and no size bound.
package cache

import (
	"sync"
	"time"

	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
)

type entry struct {
	data      interface{}
	createdAt time.Time
}

// Stats reports current entry counts per level.
type Stats struct {
	DocEntries   int `json:"doc_entries"`
	QueryEntries int `json:"query_entries"`
}

// Cache is safe for concurrent use. Construct with New and inject into the
// orchestrators; the hosting process owns its lifecycle.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	docs    map[string]entry
	queries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		docs:    make(map[string]entry),
		queries: make(map[string]entry),
		now:     time.Now,
	}
}

// GetDoc returns the cached enrichment for a document id, or false on a
// miss. An expired entry is evicted and reported as a miss.
func (c *Cache) GetDoc(id string) (interface{}, bool) {
	return c.get(c.docs, id, "doc")
}

// SetDoc caches document enrichment.
func (c *Cache) SetDoc(id string, data interface{}) {
	c.set(c.docs, id, data)
}

// GetQuery returns the cached result for a query key, or false on a miss.
func (c *Cache) GetQuery(key string) (interface{}, bool) {
	return c.get(c.queries, key, "query")
}

// SetQuery caches a ranked query result.
func (c *Cache) SetQuery(key string, data interface{}) {
	c.set(c.queries, key, data)
}

// Clear flushes both levels.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = make(map[string]entry)
	c.queries = make(map[string]entry)
}

// Snapshot returns current entry counts. Expired-but-unread entries are
// still counted; they only leave on lookup.
func (c *Cache) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		DocEntries:   len(c.docs),
		QueryEntries: len(c.queries),
	}
}

func (c *Cache) get(space map[string]entry, key, label string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := space[key]
	if !ok {
		metrics.CacheMisses.WithLabelValues(label).Inc()
		return nil, false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		delete(space, key)
		metrics.CacheMisses.WithLabelValues(label).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(label).Inc()
	return e.data, true
}

func (c *Cache) set(space map[string]entry, key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	space[key] = entry{data: data, createdAt: c.now()}
}
