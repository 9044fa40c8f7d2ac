// Package crates provides an HTTP client for the crates.io registry API.
//
// # Overview
//
// This package resolves the latest version of a Rust crate from crates.io
// (https://crates.io), the Rust community's package registry.
//
// # Usage
//
//	client := crates.NewClient()
//	latest, err := client.LatestVersion(ctx, "serde")
//
// # Version Selection
//
// The client returns the crate's max_version, the highest published version.
//
// # API Requirements
//
// crates.io requires a User-Agent header identifying the client. Requests
// without one are rejected with 403 Forbidden.
package crates
