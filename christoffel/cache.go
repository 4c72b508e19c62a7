package christoffel

import (
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/emotion"
)

// key is the packed memoization key: the full parameter set, the difference
// step and the fixed-point grid position. All fields are comparable, so keys
// hash without any string formatting.
type key struct {
	params emotion.Params
	h      float64
	qx, qy int64
}

// Cache memoizes Christoffel symbols per quantized position. It is safe for
// concurrent use. When full, the oldest entry is evicted first.
//
// Two goroutines missing on the same key may both compute the symbols; the
// first stored value is kept. As computation is deterministic, both values
// are identical.
type Cache struct {
	mu       sync.Mutex
	entries  *linkedhashmap.Map // key → Symbols, in insertion order
	capacity int
	hits     uint64
	misses   uint64
}

// NewCache creates a cache holding at most capacity positions. A capacity
// ≤ 0 means the cache is unbounded.
func NewCache(capacity int) *Cache {
	return &Cache{
		entries:  linkedhashmap.New(),
		capacity: capacity,
	}
}

// Symbols returns all symbols at (x, y), snapped to the quantization grid,
// computing and storing them if necessary. A nil cache evaluates directly.
func (c *Cache) Symbols(x, y float64, p emotion.Params, h float64) Symbols {
	if c == nil {
		return Direct{}.Symbols(x, y, p, h)
	}
	k := key{params: p, h: h, qx: riemann.Quantize(x), qy: riemann.Quantize(y)}
	c.mu.Lock()
	if v, found := c.entries.Get(k); found {
		c.hits++
		c.mu.Unlock()
		return v.(Symbols)
	}
	c.misses++
	c.mu.Unlock()
	s := Compute(riemann.Dequantize(k.qx), riemann.Dequantize(k.qy), p, h)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, found := c.entries.Get(k); found { // lost a race, keep first value
		return v.(Symbols)
	}
	c.evict()
	c.entries.Put(k, s)
	return s
}

// evict drops oldest entries until there is room for one more.
// Caller must hold c.mu.
func (c *Cache) evict() {
	if c.capacity <= 0 {
		return
	}
	for c.entries.Size() >= c.capacity {
		it := c.entries.Iterator()
		if !it.First() {
			return
		}
		c.entries.Remove(it.Key())
	}
}

// Len returns the number of cached positions.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Size()
}

// Stats returns hit and miss counts since creation or the last Reset.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Reset drops all cached positions.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	tracer().Debugf("dropping %d cached Christoffel positions", c.entries.Size())
	c.entries.Clear()
	c.hits, c.misses = 0, 0
}
