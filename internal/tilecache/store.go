// Package tilecache stores encoded tiles keyed by content fingerprint.
package tilecache

import (
	"context"
	"fmt"

	"github.com/gogpu/mapline/internal/cache"
	"github.com/gogpu/mapline/tile"
)

// Store is a byte store for encoded tiles.
type Store interface {
	// Get returns the tile stored under key. A missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key returns the cache key of the tile c rendered size pixels wide from the
// content identified by fingerprint.
func Key(fingerprint uint64, size int, c tile.Coord) string {
	return fmt.Sprintf("mapline:tile:%016x:%d:%s", fingerprint, size, c)
}

// Memory is an in-process LRU store.
type Memory struct {
	c *cache.Sharded[[]byte]
}

// NewMemory creates a store holding about capacity tiles. A capacity of 0
// or less means unlimited.
func NewMemory(capacity int) *Memory {
	return &Memory{c: cache.NewSharded[[]byte](capacity)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.c.Set(key, value)
	return nil
}

// Len returns the number of stored tiles.
func (m *Memory) Len() int { return m.c.Len() }

// Stats returns the LRU counters.
func (m *Memory) Stats() cache.Stats { return m.c.Stats() }

// Tiered reads through a fast local store in front of a shared one.
type Tiered struct {
	l1, l2 Store
}

// NewTiered combines l1 and l2. Hits in l2 are copied into l1.
func NewTiered(l1, l2 Store) *Tiered {
	return &Tiered{l1: l1, l2: l2}
}

// Get implements Store.
func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if v, ok, err := t.l1.Get(ctx, key); err == nil && ok {
		return v, true, nil
	}
	v, ok, err := t.l2.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = t.l1.Set(ctx, key, v)
	return v, true, nil
}

// Set implements Store. The value always reaches l1; an l2 failure is
// returned.
func (t *Tiered) Set(ctx context.Context, key string, value []byte) error {
	_ = t.l1.Set(ctx, key, value)
	return t.l2.Set(ctx, key, value)
}
