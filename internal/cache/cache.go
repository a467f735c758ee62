// Package cache provides a bounded LRU map used to memoize whole-pipeline
// results by normalized input text. This is the only shared mutable state in
// the core, so every operation is mutex-guarded.
package cache

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// Stats reports cache effectiveness.
type Stats struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	Size        int     `json:"size"`
	Capacity    int     `json:"capacity"`
	Utilization float64 `json:"utilization"`
}

type entry struct {
	value      any
	lastAccess time.Time
	seq        uint64 // monotonic access counter; eviction tie-breaker
}

// LRU is a bounded-capacity cache evicting the least recently accessed entry.
// Eviction is a linear scan, a known O(n) cost that is fine for capacities in
// the low hundreds.
type LRU struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*entry
	clock    uint64
	hits     uint64
	misses   uint64
}

// NewLRU creates a cache. Capacity must be positive; a non-positive capacity
// is a programmer error and panics.
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		panic(fmt.Sprintf("cache: capacity must be positive, got %d", capacity))
	}
	return &LRU{
		capacity: capacity,
		entries:  make(map[string]*entry, capacity),
	}
}

// Get returns the cached value and refreshes its last-access time. Every call
// counts as a hit or a miss.
func (c *LRU) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.clock++
	e.seq = c.clock
	e.lastAccess = time.Now()
	return e.value, true
}

// Set inserts or overwrites. At capacity, the single entry with the oldest
// last access is evicted first.
func (c *LRU) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.seq = c.clock
		e.lastAccess = time.Now()
		return
	}

	if len(c.entries) >= c.capacity {
		var oldestKey string
		var oldestSeq uint64
		first := true
		for k, e := range c.entries {
			if first || e.seq < oldestSeq {
				oldestKey, oldestSeq = k, e.seq
				first = false
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = &entry{value: value, seq: c.clock, lastAccess: time.Now()}
}

// Len returns the current entry count.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats snapshots hit/miss/size/utilization counters.
func (c *LRU) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Size:        len(c.entries),
		Capacity:    c.capacity,
		Utilization: float64(len(c.entries)) / float64(c.capacity),
	}
}

// Key hashes already-normalized text into a cache key (FNV-64a). Callers must
// normalize whitespace first so trivially different inputs share an entry.
func Key(normalizedText string) string {
	h := fnv.New64a()
	h.Write([]byte(normalizedText))
	return fmt.Sprintf("%016x", h.Sum64())
}
