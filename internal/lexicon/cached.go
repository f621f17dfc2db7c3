package lexicon

import (
	"context"
	"sync"
	"time"
)

// CachedSource serves a read-only snapshot of another source for a TTL.
// A reload replaces the whole snapshot; failed reloads are not cached.
type CachedSource struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	terms    []string
	loadedAt time.Time
}

// NewCachedSource wraps source with a TTL cache
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, ttl: ttl, now: time.Now}
}

// Name implements Source
func (c *CachedSource) Name() string { return c.source.Name() }

// Load implements Source. The returned slice is a copy.
func (c *CachedSource) Load(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	if c.terms != nil && c.now().Sub(c.loadedAt) < c.ttl {
		terms := append([]string(nil), c.terms...)
		c.mu.RUnlock()
		return terms, nil
	}
	c.mu.RUnlock()

	terms, err := c.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []string{}
	}

	c.mu.Lock()
	c.terms = terms
	c.loadedAt = c.now()
	c.mu.Unlock()

	return append([]string(nil), terms...), nil
}

// Invalidate drops the cached snapshot
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.terms = nil
	c.mu.Unlock()
}
