// Package cache is a read-through cache for the public list reads. Admin and
// API writes invalidate the touched entity's key so the next public render
// sees fresh content.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache keys, one per entity list plus the profile singleton.
const (
	KeyProfile      = "profile"
	KeySkills       = "skills"
	KeyProjects     = "projects"
	KeyCertificates = "certificates"
	KeyJourney      = "journey"
)

type Cache struct {
	c *gocache.Cache
}

func New(expiration, cleanup time.Duration) *Cache {
	return &Cache{c: gocache.New(expiration, cleanup)}
}

// Fetch returns the cached value for key, or runs fetch and caches the
// result. Fetch failures are never cached.
func (c *Cache) Fetch(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := c.c.Get(key); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	c.c.Set(key, data, gocache.DefaultExpiration)
	return data, nil
}

// Invalidate drops the given keys after a write.
func (c *Cache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.c.Delete(key)
	}
}

// Flush drops everything; used by the dashboard refresh action.
func (c *Cache) Flush() {
	c.c.Flush()
}
