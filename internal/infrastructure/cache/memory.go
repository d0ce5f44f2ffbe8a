package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is a bounded in-process cache with per-entry TTL. The default
// backend when no Redis address is configured.
type Memory struct {
	entries *lru.Cache[string, memoryEntry]
}

// NewMemory creates a memory cache holding up to size entries
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = 256
	}
	entries, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries}, nil
}

// Get returns the cached value when present and not expired
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		m.entries.Remove(key)
		return "", false
	}
	return entry.value, true
}

// Set stores a value with the given TTL
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) {
	m.entries.Add(key, memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}
