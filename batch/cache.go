// SPDX-License-Identifier: MIT
// Package: lvquad/batch
//
// cache.go — TTL cache of weight vectors keyed by (rule, n).

package batch

import (
	"strconv"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/katalvlaran/lvquad/quadrature"
)

// WeightCache memoizes quadrature.Weights. It implements
// quadrature.WeightSource and is safe for concurrent use. Errors are never
// cached.
type WeightCache struct {
	cache  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

var _ quadrature.WeightSource = (*WeightCache)(nil)

// NewWeightCache creates a cache whose entries expire after ttl and are
// swept every cleanupInterval. ttl <= 0 keeps entries forever.
func NewWeightCache(ttl, cleanupInterval time.Duration) *WeightCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &WeightCache{cache: gocache.New(ttl, cleanupInterval)}
}

// cacheKey renders "rule/n", e.g. "simpson38/8".
func cacheKey(rule quadrature.Rule, n int) string {
	return rule.String() + "/" + strconv.Itoa(n)
}

// Weights returns a copy of the cached vector, building it on a miss.
func (c *WeightCache) Weights(rule quadrature.Rule, n int) ([]float64, error) {
	key := cacheKey(rule, n)
	if v, found := c.cache.Get(key); found {
		c.hits.Add(1)
		return cloneWeights(v.([]float64)), nil
	}

	c.misses.Add(1)
	w, err := quadrature.Weights(rule, n)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, cloneWeights(w))
	return w, nil
}

// Stats returns the hit and miss counters.
func (c *WeightCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached vectors, including expired ones not yet swept.
func (c *WeightCache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every entry.
func (c *WeightCache) Flush() {
	c.cache.Flush()
}

func cloneWeights(w []float64) []float64 {
	out := make([]float64, len(w))
	copy(out, w)
	return out
}
