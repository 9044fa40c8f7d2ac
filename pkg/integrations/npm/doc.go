// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package resolves the latest published version of a package from the
// npm registry (https://registry.npmjs.org), the package manager for JavaScript.
//
// # Usage
//
//	client := npm.NewClient()
//	latest, err := client.LatestVersion(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(latest)
//
// # Version Selection
//
// The client returns the version tagged as "latest" in dist-tags, which is
// what `npm install <pkg>` would pick.
package npm
