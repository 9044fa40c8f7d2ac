// Package goproxy provides an HTTP client for the Go Module Proxy.
//
// # Overview
//
// This package resolves the latest version of a Go module from the Go Module
// Proxy (https://proxy.golang.org), the default proxy for Go modules.
//
// # Usage
//
//	client := goproxy.NewClient()
//	latest, err := client.LatestVersion(ctx, "github.com/spf13/cobra")
//	// latest == "v1.8.0"
//
// # Version Selection
//
// The @v/list endpoint returns one tagged version per line in no guaranteed
// order. The client picks the highest stable release by semantic version
// ordering, then the highest prerelease, and only falls back to the last
// line when no entry is valid semver.
//
// # Path Escaping
//
// Module paths with uppercase letters are escaped per the Go module proxy
// protocol (uppercase becomes !lowercase).
package goproxy
