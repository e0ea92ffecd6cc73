package snarkflix

import (
	"sync"
	"time"

	"github.com/snarkflix/snarkflix/analytics"
)

// StatsCache is an in-memory TTL cache over the analytics aggregates, so the
// admin dashboard does not hammer SQLite on every refresh. Entries are keyed
// by the trailing-days period.
type StatsCache struct {
	mu      sync.RWMutex
	entries map[int]statsEntry
	ttl     time.Duration
	store   *analytics.Store
}

type statsEntry struct {
	stats   *analytics.Stats
	fetched time.Time
}

// NewStatsCache creates a StatsCache backed by the given analytics store.
func NewStatsCache(s *analytics.Store, ttl time.Duration) *StatsCache {
	return &StatsCache{
		entries: make(map[int]statsEntry),
		ttl:     ttl,
		store:   s,
	}
}

// Invalidate clears the cache so the next read triggers a fresh aggregate.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[int]statsEntry)
	c.mu.Unlock()
}

// Stats returns the aggregates for the trailing number of days, reusing a
// cached result when it is still fresh. It tries a read lock first and only
// takes a write lock when a reload is needed.
func (c *StatsCache) Stats(days int) (*analytics.Stats, error) {
	c.mu.RLock()
	entry, ok := c.entries[days]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetched) < c.ttl {
		return entry.stats, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have refreshed while we waited for the lock.
	if entry, ok := c.entries[days]; ok && time.Since(entry.fetched) < c.ttl {
		return entry.stats, nil
	}
	stats, err := c.store.Stats(days)
	if err != nil {
		return nil, err
	}
	c.entries[days] = statsEntry{stats: stats, fetched: time.Now()}
	return stats, nil
}
