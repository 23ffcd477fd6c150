package predictor

import (
	"container/list"
	"fmt"
	"sync"
)

// Cache is a small request-result LRU: repeated identical (trace, k)
// queries are served without touching the asset or rerunning DTW at all.
// Re-keyed from the teacher's prefix-keyed HotCache to a full-trace key,
// since our queries are whole-trace lookups rather than incremental
// prefix completions.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

type cacheEntry struct {
	key    string
	result []Prediction
}

// NewCache builds an empty cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func cacheKey(norm string, k int) string {
	return fmt.Sprintf("%d:%s", k, norm)
}

// Get returns a cached result for (norm, k), promoting it to most-recently
// used, or ok=false on a miss.
func (c *Cache) Get(norm string, k int) ([]Prediction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[cacheKey(norm, k)]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).result, true
}

// Put stores result for (norm, k), evicting the least-recently used entry
// if the cache is at capacity.
func (c *Cache) Put(norm string, k int, result []Prediction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(norm, k)
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*cacheEntry).result = result
		return
	}

	el := c.ll.PushFront(&cacheEntry{key: key, result: result})
	c.items[key] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}
