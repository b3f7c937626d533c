package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("explorer", 3, 0.0001) {
			t.Fatalf("expected token %d to be available", i)
		}
	}
	if l.Allow("explorer", 3, 0.0001) {
		t.Fatalf("expected bucket to be exhausted")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0.0001) {
		t.Fatalf("expected first token for a")
	}
	if l.Allow("a", 1, 0.0001) {
		t.Fatalf("expected a to be exhausted")
	}
	if !l.Allow("b", 1, 0.0001) {
		t.Fatalf("expected b to be unaffected")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	l := New()
	l.Allow("k", 1, 0.0001) // drain

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "k", 1, 0.0001); err == nil {
		t.Fatalf("expected context deadline error")
	}
}

func TestWaitReturnsOnRefill(t *testing.T) {
	l := New()
	l.Allow("k", 1, 20) // drain; refills 20/s

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := l.Wait(ctx, "k", 1, 20); err != nil {
		t.Fatalf("expected token after refill, got %v", err)
	}
}
