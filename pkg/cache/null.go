package cache

import "context"

// NullCache is a no-op store that never keeps anything.
// Used when persistent caching is disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (NullCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }

// Set does nothing.
func (NullCache) Set(context.Context, string, string) error { return nil }

// Clear does nothing.
func (NullCache) Clear(context.Context) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

// Ensure NullCache implements Store.
var _ Store = (*NullCache)(nil)
