package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set(ctx, "advice:1", "save more", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if val, ok := c.Get(ctx, "advice:1"); !ok || val != "save more" {
		t.Errorf("expected hit, got %q ok=%v", val, ok)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "k", "v", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected expired entry to miss")
	}

	// Zero TTL means no expiry.
	c.Set(ctx, "forever", "v", 0)
	if _, ok := c.Get(ctx, "forever"); !ok {
		t.Error("zero-TTL entry should persist")
	}
}
