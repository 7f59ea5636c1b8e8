package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryHashOps(t *testing.T) {
	t.Parallel()
	kv := NewMemory()
	ctx := context.Background()

	if _, ok, err := kv.HGet(ctx, "productCart", "user-1"); err != nil || ok {
		t.Fatalf("unexpected hit on empty hash: ok=%v err=%v", ok, err)
	}
	if err := kv.HSet(ctx, "productCart", "user-1", `{"1":3}`); err != nil {
		t.Fatalf("hset failed: %v", err)
	}
	val, ok, err := kv.HGet(ctx, "productCart", "user-1")
	if err != nil || !ok {
		t.Fatalf("expected hit: ok=%v err=%v", ok, err)
	}
	if val != `{"1":3}` {
		t.Fatalf("unexpected value: got=%q", val)
	}
	if _, ok, _ := kv.HGet(ctx, "productCart", "user-2"); ok {
		t.Fatal("field isolation broken")
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	t.Parallel()
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.SetWithTTL(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); !ok {
		t.Fatal("expected hit before expiry")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.SetWithTTL(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(15 * time.Millisecond)
	if _, ok, _ := kv.Get(ctx, "k"); !ok {
		t.Fatal("zero-ttl entry should persist")
	}
}
