package inkpress

import (
	"sync"
	"time"
)

// postCache memoizes parsed posts across rebuilds, keyed by path and
// modification time. Watch mode rebuilds the whole site on every change;
// the cache keeps that cheap by re-parsing only files that moved on disk.
type postCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	post    Post
}

func newPostCache() *postCache {
	return &postCache{entries: make(map[string]cacheEntry)}
}

func (c *postCache) get(path string, modTime time.Time) (Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	if !ok || !e.modTime.Equal(modTime) {
		return Post{}, false
	}
	return e.post, true
}

func (c *postCache) put(path string, modTime time.Time, post Post) {
	c.mu.Lock()
	c.entries[path] = cacheEntry{modTime: modTime, post: post}
	c.mu.Unlock()
}

// Invalidate clears the cache so the next build re-parses everything.
func (c *postCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
