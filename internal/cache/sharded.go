package cache

import "github.com/cespare/xxhash/v2"

// shardCount must be a power of 2.
const shardCount = 16

// Sharded is a string-keyed LRU cache split into independently locked
// shards, for caches hit by many goroutines at once.
type Sharded[V any] struct {
	shards [shardCount]*Cache[string, V]
}

// NewSharded creates a sharded cache holding about capacity entries,
// spread evenly over the shards. A capacity of 0 or less means unlimited.
func NewSharded[V any](capacity int) *Sharded[V] {
	per := 0
	if capacity > 0 {
		per = (capacity + shardCount - 1) / shardCount
	}
	s := &Sharded[V]{}
	for i := range s.shards {
		s.shards[i] = New[string, V](per)
	}
	return s
}

func (s *Sharded[V]) shard(key string) *Cache[string, V] {
	return s.shards[xxhash.Sum64String(key)&(shardCount-1)]
}

// Get returns the value for key.
func (s *Sharded[V]) Get(key string) (V, bool) { return s.shard(key).Get(key) }

// Set stores value under key, evicting the least recently used entry of
// its shard when the shard is full.
func (s *Sharded[V]) Set(key string, value V) { s.shard(key).Set(key, value) }

// Delete removes key. It reports whether the key was present.
func (s *Sharded[V]) Delete(key string) bool { return s.shard(key).Delete(key) }

// Clear removes all entries.
func (s *Sharded[V]) Clear() {
	for _, c := range s.shards {
		c.Clear()
	}
}

// Len returns the number of entries across all shards.
func (s *Sharded[V]) Len() int {
	n := 0
	for _, c := range s.shards {
		n += c.Len()
	}
	return n
}

// Stats returns the counters summed over all shards.
func (s *Sharded[V]) Stats() Stats {
	var total Stats
	for _, c := range s.shards {
		st := c.Stats()
		total.Len += st.Len
		total.Capacity += st.Capacity
		total.Hits += st.Hits
		total.Misses += st.Misses
	}
	return total
}
