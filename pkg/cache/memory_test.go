package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, hit := c.Get(ctx, "missing"); hit {
		t.Error("Get on an empty cache reported a hit")
	}

	c.Set(ctx, "key", "value", time.Minute)
	got, hit := c.Get(ctx, "key")
	if !hit {
		t.Fatal("Get after Set reported a miss")
	}
	if got != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}

	c.Delete(ctx, "key")
	if _, hit := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete reported a hit")
	}
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "short", "gone soon", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, hit := c.Get(ctx, "short"); hit {
		t.Error("entry survived past its TTL")
	}
}
