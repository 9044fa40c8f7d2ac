package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/versionlens/pkg/errors"
)

// DefaultTTL is how long a registry lookup stays fresh.
const DefaultTTL = 24 * time.Hour

// Store is a persistent cache of registry lookups keyed by [Key].
//
// Implementations evict stale entries on read; there is no background sweep.
// All methods are safe for concurrent use.
type Store interface {
	// Get returns the cached value, or ok=false on a miss or stale entry.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, creating any missing namespace.
	Set(ctx context.Context, key, value string) error
	// Clear removes every entry.
	Clear(ctx context.Context) error
	// Close releases resources held by the store.
	Close() error
}

// Key builds the cache key "{registry}@{package}".
func Key(registry, pkg string) string {
	return registry + "@" + pkg
}

// SplitKey splits a key produced by [Key] and validates both halves.
// Registry ids never contain "@", so the first one separates them; scoped npm
// packages ("npm@@types/node") keep their own "@".
func SplitKey(key string) (registry, pkg string, err error) {
	registry, pkg, found := strings.Cut(key, "@")
	if !found {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "invalid cache key %q: missing registry", key)
	}
	if err := errors.ValidateRegistryID(registry); err != nil {
		return "", "", err
	}
	if err := errors.ValidatePackageName(pkg); err != nil {
		return "", "", err
	}
	return registry, pkg, nil
}

// entry is the stored form of a cached value, shared by all backends.
type entry struct {
	Value     string `json:"value"`
	Timestamp uint64 `json:"timestamp"` // unix seconds at write time
}

func newEntry(value string, now time.Time) entry {
	ts := now.Unix()
	if ts < 0 {
		ts = 0
	}
	return entry{Value: value, Timestamp: uint64(ts)}
}

// expired reports whether the entry is older than ttl. A timestamp in the
// future counts as age zero.
func (e entry) expired(now time.Time, ttl time.Duration) bool {
	current := now.Unix()
	if current < 0 || uint64(current) <= e.Timestamp {
		return false
	}
	age := time.Duration(uint64(current)-e.Timestamp) * time.Second
	return age > ttl
}
