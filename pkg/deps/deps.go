package deps

import (
	"context"
	"time"
)

const (
	DefaultCacheTTL = 24 * time.Hour // Default persistent cache duration
	UnknownLine     = 0              // Line number for dependencies that could not be located
	AnyVersion      = "*"            // Specifier used when a manifest does not pin a version
)

// Dependency is a single declared dependency extracted from a manifest.
//
// Dependencies are values: a parser produces a fresh slice on every call and
// callers never mutate them in place.
type Dependency struct {
	Name    string // Package name as written in the manifest
	Version string // Version specifier (e.g. "^1.2.3", ">=2.0", "*")
	Line    int    // 1-indexed source line, or UnknownLine
}

// Fetcher looks up the latest published version of a package in one registry.
type Fetcher interface {
	// LatestVersion returns the newest version string for name.
	LatestVersion(ctx context.Context, name string) (string, error)
}

// FetcherFunc adapts an ordinary function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, name string) (string, error)

// LatestVersion calls f(ctx, name).
func (f FetcherFunc) LatestVersion(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}
