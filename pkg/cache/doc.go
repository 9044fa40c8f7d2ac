// Package cache stores registry lookup results.
//
// Two layers keep versionlens from asking a registry the same question twice:
//
//   - [Store]: the persistent cache, shared across runs and processes, with a
//     TTL checked on every read. [FileCache] is the default backend,
//     [RedisCache] lets several machines share results and [NullCache]
//     disables persistence.
//   - [Memory]: the session cache, an in-process map with no expiry that is
//     dropped when the watcher clears all state.
//
// Persistent keys have the form "{registry}@{package}" (see [Key]), so the
// same name in two ecosystems never collides:
//
//	store, _ := cache.NewFileCache(dir, 24*time.Hour)
//	_ = store.Set(ctx, cache.Key("npm", "react"), "18.2.0")
//	v, ok, _ := store.Get(ctx, cache.Key("npm", "react"))
//
// A stale entry is deleted by the read that finds it; there is no background
// sweep. Backend failures carry the CACHE_IO error code and callers treat them
// as a miss.
package cache
