package cost

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/goMFS/internal/core/bignum"
)

const powerCacheSize = 4096

type powerKey struct {
	base  float64
	level int
}

// powers memoizes growth^level terms; the same few curves are evaluated
// for every affordability check of every tick.
var powers = newPowerCache(powerCacheSize)

type powerCache struct {
	cache  *lru.Cache[powerKey, bignum.Number]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newPowerCache(size int) *powerCache {
	c, err := lru.New[powerKey, bignum.Number](size)
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return &powerCache{cache: c}
}

func (p *powerCache) get(base float64, level int) bignum.Number {
	key := powerKey{base: base, level: level}
	if v, ok := p.cache.Get(key); ok {
		p.hits.Add(1)
		return v
	}
	p.misses.Add(1)
	v := bignum.PowInt(base, level)
	p.cache.Add(key, v)
	return v
}

func power(base float64, level int) bignum.Number {
	if level <= 0 {
		return bignum.One()
	}
	return powers.get(base, level)
}

// CacheStats reports power cache hits and misses.
func CacheStats() (hits, misses uint64) {
	return powers.hits.Load(), powers.misses.Load()
}
