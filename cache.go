package ms

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheCapacity bounds the number of parse results retained at any time.
const cacheCapacity = 100

// results caches full-path parse results keyed by the raw input string,
// evicting the least recently used entry when full. It lives for the
// process lifetime and is never invalidated: a given string always
// parses to the same value. Fast-path strings never land here, their
// lookup happens before the cache is consulted. lru.Cache serializes
// access internally, so promotion and eviction stay strictly ordered
// under concurrent use.
var results = newCache(cacheCapacity)

func newCache(capacity int) *lru.Cache[string, float64] {
	c, err := lru.New[string, float64](capacity)
	if err != nil {
		// Only fails for a non-positive capacity.
		panic(err)
	}
	return c
}
