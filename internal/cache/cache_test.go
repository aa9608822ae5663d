package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("graph", "audience", "intent")
	k2 := Key("graph", "audience", "intent")
	k3 := Key("graph", "audience", "murder")

	if k1 != k2 {
		t.Error("expected identical parts to derive identical keys")
	}
	if k1 == k3 {
		t.Error("expected different parts to derive different keys")
	}
	if len(k1) < 20 {
		t.Errorf("suspiciously short key: %q", k1)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss on empty cache")
	}

	if err := c.Set("verdict", []byte("accepted"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("verdict")
	if !found || !bytes.Equal(val, []byte("accepted")) {
		t.Errorf("expected hit with stored value, got %q found=%v", val, found)
	}

	if err := c.Delete("verdict"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("verdict"); found {
		t.Error("expected miss after delete")
	}

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected miss after clear")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("short", []byte("x"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("short"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss on empty cache")
	}

	key := Key("graph", "intent")
	if err := c.Set(key, []byte("undecided"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh instance over the same directory sees the entry.
	reopened := NewDiskCache(dir, time.Minute)
	val, found := reopened.Get(key)
	if !found || !bytes.Equal(val, []byte("undecided")) {
		t.Errorf("expected persisted entry, got %q found=%v", val, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	_ = c.Set("short", []byte("x"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("short"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache_ZeroTTLUsesDefault(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	_ = c.Set("entry", []byte("x"), 0)

	if _, found := c.Get("entry"); !found {
		t.Error("expected entry stored with the default TTL to be live")
	}
}

func TestLayeredCache(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("verdict", []byte("rejected"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("verdict")
	if !found || !bytes.Equal(val, []byte("rejected")) {
		t.Errorf("expected hit, got %q found=%v", val, found)
	}

	// A new layered cache over the same directory has a cold memory layer
	// but finds the entry on disk and promotes it.
	warm := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found = warm.Get("verdict")
	if !found || !bytes.Equal(val, []byte("rejected")) {
		t.Errorf("expected disk hit through fresh memory layer, got %q found=%v", val, found)
	}
	if _, found := warm.memory.Get("verdict"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("verdict"); found {
		t.Error("expected miss after clear")
	}
}
