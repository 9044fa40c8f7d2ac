// Package pubdev provides an HTTP client for the pub.dev package API.
//
// # Overview
//
// This package resolves the latest version of a Dart or Flutter package from
// pub.dev (https://pub.dev).
//
// # Usage
//
//	client := pubdev.NewClient()
//	latest, err := client.LatestVersion(ctx, "provider")
package pubdev
