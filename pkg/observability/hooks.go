// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about watcher passes, cache operations, and registry calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWatcherHooks(&myWatcherHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Watcher().OnPassStart(ctx, passID, path, len(list))
//	// ... resolve and compare ...
//	observability.Watcher().OnPassComplete(ctx, passID, path, published, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Lookup sources reported by [WatcherHooks.OnLookup].
const (
	SourceSession  = "session"  // in-process session cache
	SourceCache    = "cache"    // persistent cache
	SourceRegistry = "registry" // live registry request
)

// =============================================================================
// Watcher Hooks
// =============================================================================

// WatcherHooks receives events from manifest processing passes.
type WatcherHooks interface {
	// OnPassStart records the start of a pass over a parsed manifest.
	OnPassStart(ctx context.Context, passID, path string, dependencies int)

	// OnPassComplete records the end of a pass and the number of annotations published.
	OnPassComplete(ctx context.Context, passID, path string, annotations int, duration time.Duration, err error)

	// OnLookup records how one dependency's latest version was resolved.
	OnLookup(ctx context.Context, registry, pkg, source string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from persistent cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, backend string)

	// OnCacheMiss records a cache miss (including stale entries).
	OnCacheMiss(ctx context.Context, backend string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, backend string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from registry HTTP requests.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWatcherHooks is a no-op implementation of WatcherHooks.
type NoopWatcherHooks struct{}

func (NoopWatcherHooks) OnPassStart(context.Context, string, string, int) {}
func (NoopWatcherHooks) OnPassComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopWatcherHooks) OnLookup(context.Context, string, string, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	watcherHooks WatcherHooks = NoopWatcherHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetWatcherHooks registers custom watcher hooks.
// This should be called once at application startup before any watcher operations.
func SetWatcherHooks(h WatcherHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		watcherHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Watcher returns the registered watcher hooks.
func Watcher() WatcherHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return watcherHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	watcherHooks = NoopWatcherHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
