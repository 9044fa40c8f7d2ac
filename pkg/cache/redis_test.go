package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Redis tests need a live server: VERSIONLENS_TEST_REDIS=localhost:6379.
func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("VERSIONLENS_TEST_REDIS")
	if addr == "" {
		t.Skip("VERSIONLENS_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), addr, time.Hour)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	c.prefix = "versionlens-test:" + t.Name() + ":"
	t.Cleanup(func() {
		_ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t)

	if err := c.Set(ctx, "npm@react", "18.2.0"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := c.Get(ctx, "npm@react")
	if err != nil || !ok || v != "18.2.0" {
		t.Errorf("Get = (%q, %v, %v)", v, ok, err)
	}
}

func TestRedisCache_Expired(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t)

	now := time.Now()
	c.now = func() time.Time { return now }
	if err := c.Set(ctx, "pypi@flask", "3.0.0"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	c.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, ok, err := c.Get(ctx, "pypi@flask"); ok || err != nil {
		t.Errorf("Get after TTL = ok %v, err %v; want miss", ok, err)
	}
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t)

	for _, key := range []string{"npm@a", "npm@b", "go@example.com/m"} {
		if err := c.Set(ctx, key, "1.0.0"); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "npm@a"); ok {
		t.Error("entry survived Clear")
	}
}
