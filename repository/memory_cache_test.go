package repository

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryCacheGetSet(t *testing.T) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	if err := cache.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := cache.Get(ctx, "k")
	if !ok || got != "v" {
		t.Errorf("expected hit with v, got %q (ok=%v)", got, ok)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cache.Set(ctx, "k", "v")

	now = now.Add(59 * time.Second)
	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Fatalf("expected entry to be live before ttl")
	}

	now = now.Add(time.Second)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected entry to expire at ttl")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired entry to be evicted")
	}
}

func TestMemoryCacheEvictionKeepsRefreshedEntry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cache.Set(ctx, "k", "old")

	// A reader saw the entry expired at start+2m, then a writer refreshed it
	// before the reader took the write lock.
	stale := start.Add(2 * time.Minute)
	now = stale
	_ = cache.Set(ctx, "k", "new")
	cache.evictExpired("k", stale)

	got, ok := cache.Get(ctx, "k")
	if !ok || got != "new" {
		t.Errorf("expected refreshed entry to survive, got %q (ok=%v)", got, ok)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(time.Nanosecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = cache.Set(ctx, "k", "v")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				cache.Get(ctx, "k")
			}
		}()
	}
	wg.Wait()

	if cache.Len() > 1 {
		t.Errorf("expected at most one entry, got %d", cache.Len())
	}
}
