package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/observability"
)

// FileCache stores one JSON file per package under a directory per registry:
//
//	{root}/{registry}/{escaped package}.json  ->  {"value": "1.2.3", "timestamp": 1700000000}
//
// Several processes may share one root.
type FileCache struct {
	root string
	ttl  time.Duration
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist. A non-positive ttl
// uses [DefaultTTL].
func NewFileCache(root string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCacheIO, err, "create cache dir")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileCache{root: root, ttl: ttl, now: time.Now}, nil
}

// Dir returns the cache root directory.
func (c *FileCache) Dir() string { return c.root }

// Get retrieves a value from the cache. A stale or corrupt entry is removed
// and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := c.path(key)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		observability.Cache().OnCacheMiss(ctx, "file")
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeCacheIO, err, "read %s", key)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		observability.Cache().OnCacheMiss(ctx, "file")
		return "", false, nil
	}

	if e.expired(c.now(), c.ttl) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return "", false, errors.Wrap(errors.ErrCodeCacheIO, err, "evict %s", key)
		}
		observability.Cache().OnCacheMiss(ctx, "file")
		return "", false, nil
	}

	observability.Cache().OnCacheHit(ctx, "file")
	return e.Value, true, nil
}

// Set stores a value in the cache, creating the registry directory first.
// The file is written to a temporary name and renamed into place.
func (c *FileCache) Set(ctx context.Context, key, value string) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(newEntry(value, c.now()))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "write %s", key)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheIO, err, "write %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheIO, err, "write %s", key)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheIO, err, "write %s", key)
	}

	observability.Cache().OnCacheSet(ctx, "file", len(data))
	return nil
}

// Clear removes the whole cache hierarchy and recreates an empty root.
func (c *FileCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.root); err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "clear cache")
	}
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "recreate cache dir")
	}
	return nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to {root}/{registry}/{package}.json. The package
// name is path-escaped so scoped and slash-separated names stay one file.
func (c *FileCache) path(key string) (string, error) {
	registry, pkg, err := SplitKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.root, registry, url.PathEscape(pkg)+".json"), nil
}

// Ensure FileCache implements Store.
var _ Store = (*FileCache)(nil)
