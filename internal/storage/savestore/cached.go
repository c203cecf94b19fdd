package savestore

import (
	"context"
	"errors"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheStats reports read cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// Cached serves repeated reads of the same slot from an LRU cache. Writes
// go through to the underlying Store and refresh the cache.
type Cached struct {
	Store
	cache  *lru.Cache[string, []byte]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCached wraps s with a cache of size slots.
func NewCached(s Store, size int) (*Cached, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{Store: s, cache: cache}, nil
}

func (c *Cached) Put(ctx context.Context, slot string, data []byte) error {
	if err := c.Store.Put(ctx, slot, data); err != nil {
		c.cache.Remove(slot)
		return err
	}
	c.cache.Add(slot, copyBytes(data))
	return nil
}

func (c *Cached) Get(ctx context.Context, slot string) ([]byte, error) {
	if data, ok := c.cache.Get(slot); ok {
		c.hits.Add(1)
		return copyBytes(data), nil
	}
	c.misses.Add(1)

	data, err := c.Store.Get(ctx, slot)
	if err != nil {
		return nil, err
	}
	c.cache.Add(slot, copyBytes(data))
	return data, nil
}

func (c *Cached) Delete(ctx context.Context, slot string) error {
	c.cache.Remove(slot)
	return c.Store.Delete(ctx, slot)
}

func (c *Cached) Close() error {
	c.cache.Purge()
	err := c.Store.Close()
	if errors.Is(err, ErrStoreClosed) {
		return nil
	}
	return err
}

// Stats returns cache counters.
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.cache.Len(),
	}
}
