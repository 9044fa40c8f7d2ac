// Package pkg provides the core libraries for versionlens.
//
// # Overview
//
// Versionlens watches package manifests and annotates every dependency line
// with the latest published release. The pkg directory is organized into:
//
//  1. [deps] - Manifest parsers, one sub-package per ecosystem
//  2. [version] - Comparison of declared and latest versions
//  3. [integrations] - Registry clients (npm, crates.io, PyPI, RubyGems, pub.dev, Go proxy)
//  4. [cache] - Persistent latest-version cache (file, Redis) and the session cache
//  5. [watcher] - Orchestration (change event → parse → resolve → annotate)
//
// Supporting packages: [annotation] (styles and the per-document store),
// [debounce], [state] (inline toggle), [config], [errors], [observability]
// and [buildinfo].
//
// # Architecture
//
// The data flow of one pass:
//
//	manifest change (path, content)
//	         ↓
//	    [debounce] per-document gate
//	         ↓
//	    [deps] parser for the file name
//	         ↓
//	    session cache → [cache] store → [integrations] registry
//	         ↓
//	    [version] comparison → [annotation] store → publish
//
// # Quick Start
//
//	w := watcher.New(watcher.Options{})
//	outcome, err := w.OnChange(ctx, "/app/package.json", content)
//	if err == nil && outcome == watcher.Published {
//	    list, _ := w.Annotations("/app/package.json")
//	    for _, a := range list {
//	        fmt.Println(a.Line, a.Package, a.Text)
//	    }
//	}
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/deps
// [version]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/version
// [integrations]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/cache
// [watcher]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/watcher
// [annotation]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/annotation
// [debounce]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/debounce
// [state]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/state
// [config]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/versionlens/pkg/buildinfo
package pkg
