// Package rubygems provides an HTTP client for the RubyGems.org API.
//
// # Overview
//
// This package resolves the current version of a gem from RubyGems.org
// (https://rubygems.org), the Ruby community's gem hosting service.
//
// # Usage
//
//	client := rubygems.NewClient()
//	latest, err := client.LatestVersion(ctx, "rails")
//
// RubyGems answers unknown gems with a plain-text 404 body, which surfaces
// as [integrations.ErrNotFound].
//
// [integrations.ErrNotFound]: github.com/matzehuels/versionlens/pkg/integrations.ErrNotFound
package rubygems
