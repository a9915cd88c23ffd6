package kakaomap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
	"github.com/hanbit-labs/korea-sensor-etl/internal/observability"
)

// CachedResolver wraps a RegionResolver with an in-memory LRU cache.
// Coordinates are keyed at 1-metre resolution, which for WCONGNAMUL
// planar units collapses jitter from repeated lookups of the same device.
type CachedResolver struct {
	inner   domain.RegionResolver
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedResolver creates a cache decorator around a region resolver.
func NewCachedResolver(inner domain.RegionResolver, maxEntries int, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedResolver) ResolveRegion(ctx context.Context, x, y float64) (domain.RegionInfo, error) {
	key := fmt.Sprintf("%.0f,%.0f", x, y)
	if region, ok := c.cache.get(key); ok {
		if c.metrics != nil {
			c.metrics.RegionCache.WithLabelValues("hit").Inc()
		}
		return region, nil
	}
	if c.metrics != nil {
		c.metrics.RegionCache.WithLabelValues("miss").Inc()
	}
	start := time.Now()
	region, err := c.inner.ResolveRegion(ctx, x, y)
	if c.metrics != nil {
		c.metrics.RegionDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return region, err
	}
	// Only cache non-empty results so transient "not found" responses can be retried.
	if region != (domain.RegionInfo{}) {
		c.cache.put(key, region)
	}
	return region, nil
}

// lruCache is a simple thread-safe LRU cache for RegionInfo values.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.RegionInfo
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.RegionInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.RegionInfo{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.RegionInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
