package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is a process-local CacheRepository with optional expiry.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if now := m.now(); e.expired(now) {
		m.evictExpired(key, now)
		return "", false
	}
	return e.value, true
}

// evictExpired deletes key only if it is still expired at now, so a Set that
// landed after the read is kept.
func (m *MemoryCache) evictExpired(key string, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.data[key]; ok && e.expired(now) {
		delete(m.data, key)
	}
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	e := memoryEntry{value: value}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
