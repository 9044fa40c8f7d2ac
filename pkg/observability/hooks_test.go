package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Watcher hooks
	w := NoopWatcherHooks{}
	w.OnPassStart(ctx, "pass-1", "/app/package.json", 12)
	w.OnPassComplete(ctx, "pass-1", "/app/package.json", 11, time.Second, nil)
	w.OnLookup(ctx, "npm", "react", SourceRegistry, time.Millisecond, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "file")
	c.OnCacheMiss(ctx, "redis")
	c.OnCacheSet(ctx, "file", 48)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "registry.npmjs.org", "/react")
	h.OnResponse(ctx, "GET", "registry.npmjs.org", "/react", 200, time.Second)
	h.OnError(ctx, "GET", "registry.npmjs.org", "/react", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Watcher().(NoopWatcherHooks); !ok {
		t.Error("Watcher() should return NoopWatcherHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customWatcher := &testWatcherHooks{}
	SetWatcherHooks(customWatcher)
	if Watcher() != customWatcher {
		t.Error("SetWatcherHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Watcher().(NoopWatcherHooks); !ok {
		t.Error("Reset() should restore NoopWatcherHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testWatcherHooks{}
	SetWatcherHooks(custom)

	// Setting nil should be ignored
	SetWatcherHooks(nil)

	if Watcher() != custom {
		t.Error("SetWatcherHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testWatcherHooks struct{ NoopWatcherHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
