package entitlement

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// accessCache memoizes positive access decisions. Only grants are
// cached: a denial can flip to a grant at any moment (purchase,
// subscription), but a grant for basic/premium is permanent and a
// streaming grant is valid for at least the cache TTL.
type accessCache struct {
	lru *expirable.LRU[string, bool]
}

func newAccessCache(size int, ttl time.Duration) *accessCache {
	return &accessCache{
		lru: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

func (c *accessCache) Get(userID string, videoID int) bool {
	granted, found := c.lru.Get(cacheKey(userID, videoID))
	return found && granted
}

func (c *accessCache) SetGranted(userID string, videoID int) {
	c.lru.Add(cacheKey(userID, videoID), true)
}

func (c *accessCache) Invalidate(userID string, videoID int) {
	c.lru.Remove(cacheKey(userID, videoID))
}

func (c *accessCache) Clear() {
	c.lru.Purge()
}

func cacheKey(userID string, videoID int) string {
	return fmt.Sprintf("%s:%d", userID, videoID)
}
