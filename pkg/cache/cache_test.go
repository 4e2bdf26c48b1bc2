package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	t.Run("RoundTrip", func(t *testing.T) {
		if err := c.Set(ctx, "layout:abc", []byte(`{"room_id":"KITCHEN-01"}`), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, hit, err := c.Get(ctx, "layout:abc")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit {
			t.Fatal("expected hit")
		}
		if !bytes.Equal(data, []byte(`{"room_id":"KITCHEN-01"}`)) {
			t.Errorf("data = %s", data)
		}
	})

	t.Run("Miss", func(t *testing.T) {
		_, hit, err := c.Get(ctx, "layout:never-set")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("unexpected hit")
		}
	})

	t.Run("Expiration", func(t *testing.T) {
		if err := c.Set(ctx, "layout:ttl", []byte("x"), time.Nanosecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(time.Millisecond)
		_, hit, err := c.Get(ctx, "layout:ttl")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("expired entry returned a hit")
		}
	})

	t.Run("ZeroTTLNeverExpires", func(t *testing.T) {
		if err := c.Set(ctx, "layout:forever", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		_, hit, err := c.Get(ctx, "layout:forever")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit {
			t.Error("zero-TTL entry expired")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Set(ctx, "layout:gone", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Delete(ctx, "layout:gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "layout:gone"); hit {
			t.Error("deleted entry returned a hit")
		}
		// Deleting a missing key is fine.
		if err := c.Delete(ctx, "layout:gone"); err != nil {
			t.Errorf("Delete missing: %v", err)
		}
	})
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.LayoutKey("cfg-a", "room-a", LayoutKeyOpts{Version: "1"})
	k2 := k.LayoutKey("cfg-a", "room-a", LayoutKeyOpts{Version: "1"})
	if k1 != k2 {
		t.Error("LayoutKey should be deterministic")
	}

	if k.LayoutKey("cfg-b", "room-a", LayoutKeyOpts{Version: "1"}) == k1 {
		t.Error("Different config hashes should produce different keys")
	}
	if k.LayoutKey("cfg-a", "room-b", LayoutKeyOpts{Version: "1"}) == k1 {
		t.Error("Different room hashes should produce different keys")
	}
	if k.LayoutKey("cfg-a", "room-a", LayoutKeyOpts{Version: "2"}) == k1 {
		t.Error("Different versions should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:acme:")

	key := scoped.LayoutKey("cfg-a", "room-a", LayoutKeyOpts{})
	want := "project:acme:" + inner.LayoutKey("cfg-a", "room-a", LayoutKeyOpts{})
	if key != want {
		t.Errorf("key = %s, want %s", key, want)
	}

	// Nil inner falls back to the default keyer.
	fallback := NewScopedKeyer(nil, "p:")
	if fallback.LayoutKey("c", "r", LayoutKeyOpts{}) != "p:"+inner.LayoutKey("c", "r", LayoutKeyOpts{}) {
		t.Error("nil inner keyer not defaulted")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("NonRetryableFailsFast", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return context.Canceled
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("SuccessStops", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}
