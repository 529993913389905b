// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.New[string, []byte](512)
//	c.Set("12/655/1583", png)
//	data, ok := c.Get("12/655/1583")
//
// The cache holds at most its capacity entries. Inserting past capacity
// evicts the least recently used entry. Get and Set are O(1).
//
// Sharded spreads string keys over independently locked caches for
// heavily concurrent use.
package cache
