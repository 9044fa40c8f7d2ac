// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// Each registry has its own subpackage that answers a single question: what
// is the latest published version of a package?
//
//   - [npm]: Node Package Manager
//   - [crates]: Rust crates.io
//   - [pypi]: Python Package Index
//   - [rubygems]: Ruby gems
//   - [pubdev]: Dart and Flutter packages
//   - [goproxy]: Go Module Proxy
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := npm.NewClient()
//	latest, err := client.LatestVersion(ctx, "react")
//
// Clients issue one GET per lookup and do not cache or retry; caching is the
// caller's concern (see the cache package).
//
// # Errors
//
// Failures wrap one of the sentinels [ErrNotFound], [ErrNetwork],
// [ErrRegistry], or [ErrMalformed], so callers can use [errors.Is].
//
// # Adding a New Registry
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with LatestVersion and PackageURL
//  4. Use [NewClient] for HTTP
//  5. Wire into the deps package as a new language
//
// [npm]: github.com/matzehuels/versionlens/pkg/integrations/npm
// [crates]: github.com/matzehuels/versionlens/pkg/integrations/crates
// [pypi]: github.com/matzehuels/versionlens/pkg/integrations/pypi
// [rubygems]: github.com/matzehuels/versionlens/pkg/integrations/rubygems
// [pubdev]: github.com/matzehuels/versionlens/pkg/integrations/pubdev
// [goproxy]: github.com/matzehuels/versionlens/pkg/integrations/goproxy
package integrations
