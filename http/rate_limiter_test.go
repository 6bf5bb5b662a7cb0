package http

import (
	"testing"
	"time"
)

func TestRateLimiterRefillsPerWindow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := range 2 {
		if ok, _ := limiter.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	now = now.Add(20 * time.Second)
	ok, retryAfter := limiter.Allow("10.0.0.1")
	if ok {
		t.Fatalf("third request should be limited")
	}
	if retryAfter != 40*time.Second {
		t.Errorf("expected retry after 40s, got %v", retryAfter)
	}

	if ok, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Errorf("other clients should not be limited")
	}

	now = now.Add(40 * time.Second)
	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Errorf("bucket should refill after the window")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(bucketCleanupThreshold + time.Second)
	limiter.Allow("10.0.0.2")

	limiter.cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.clients["10.0.0.1"]; ok {
		t.Errorf("stale bucket should be removed")
	}
	if _, ok := limiter.clients["10.0.0.2"]; !ok {
		t.Errorf("fresh bucket should be kept")
	}
}

func TestRateLimiterStopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	limiter.Stop()
	limiter.Stop()
}
