package cache

import (
	"testing"
	"time"
)

func TestPriceCacheExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	pc := NewPriceCache(60 * time.Second).WithClock(clock)

	pc.Set("eth", 3500.25)
	got, ok := pc.Get("eth")
	if !ok || got != 3500.25 {
		t.Fatalf("expected fresh hit 3500.25, got %v ok=%v", got, ok)
	}

	now = now.Add(59 * time.Second)
	if _, ok := pc.Get("eth"); !ok {
		t.Fatalf("expected hit within ttl")
	}

	now = now.Add(2 * time.Second)
	if _, ok := pc.Get("eth"); ok {
		t.Fatalf("expected miss after ttl")
	}
}

func TestPriceCacheMissUnknownChain(t *testing.T) {
	pc := NewPriceCache(time.Minute)
	if _, ok := pc.Get("bsc"); ok {
		t.Fatalf("expected miss for unset chain")
	}
}

func TestTTLCacheTyped(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", 42, time.Minute)
	if v, ok := GetTyped[int](c, "k"); !ok || v != 42 {
		t.Fatalf("expected typed hit 42, got %v ok=%v", v, ok)
	}
	if _, ok := GetTyped[string](c, "k"); ok {
		t.Fatalf("expected type mismatch to miss")
	}
}
