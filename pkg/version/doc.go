// Package version compares manifest version specifiers with the latest
// published version of a package.
//
// # Comparing
//
//	cmp := version.Compare("^1.2.0", "2.0.0")
//	cmp.Status // version.Outdated
//	cmp.Diff   // version.Major
//	cmp.Text() // "^1.2.0 → 2.0.0 (major)"
//
// The latest version must be a strict semantic version
// (major.minor.patch[-pre][+build]); anything else yields an Invalid result
// whose Err carries an INVALID_VERSION code.
//
// # Requirements
//
// [ParseRequirement] understands caret, tilde, comparator ranges and bare
// versions. Everything else (npm tags, Cargo's "1.0", Bundler's "~> 7.0",
// "*") is treated as a wildcard that any version satisfies, so those
// dependencies always read as up to date. Parsing and matching use
// Masterminds/semver.
package version
