package answercache

import (
	"context"
	"sync"
	"time"

	"faqpilot/internal/domain/qa"
)

type memoryEntry struct {
	answer    string
	expiresAt time.Time
}

// MemoryCache is the in-process fallback when no Valkey address is set.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache constructs an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}
	return entry.answer, true, nil
}

func (c *MemoryCache) Save(_ context.Context, key, answer string, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := memoryEntry{answer: answer}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

var _ qa.AnswerCache = (*MemoryCache)(nil)
