// Package deps defines the manifest and registry abstractions shared by all
// supported ecosystems.
//
// # Overview
//
// Versionlens reads a manifest (package.json, Cargo.toml, go.mod, ...), extracts
// each declared dependency together with its source line, and asks the
// ecosystem's registry for the latest published version. This package holds the
// types that connect those steps:
//
//   - [Dependency]: name, version specifier and 1-indexed line
//   - [ManifestParser]: manifest text to an ordered list of dependencies
//   - [Fetcher]: package name to latest version string
//   - [Language]: one ecosystem's parser, registry id and fetcher
//
// # Parsing
//
// Parsers operate on text, not paths, so editors can hand over unsaved buffers:
//
//	parser := javascript.Language.Parser
//	list, err := parser.Parse(`{"dependencies":{"react":"^18.0.0"}}`)
//
// Parsers backed by a structured format (JSON, TOML) fail with an
// INVALID_MANIFEST error on malformed syntax. Line-oriented parsers never fail;
// unrecognized lines are skipped.
//
// # Dispatch
//
// [ManifestTable] is a static filename to [Language] lookup used by the
// watcher. [DetectManifest] offers the same dispatch over bare parsers.
//
// # Supported Languages
//
// Each language has a subpackage with its [Language] definition:
//
//   - [javascript]: npm, package.json
//   - [rust]: crates.io, Cargo.toml
//   - [golang]: Go module proxy, go.mod
//   - [python]: PyPI, pyproject.toml
//   - [ruby]: RubyGems, Gemfile
//   - [dart]: pub.dev, pubspec.yaml
//
// [javascript]: github.com/matzehuels/versionlens/pkg/deps/javascript
// [rust]: github.com/matzehuels/versionlens/pkg/deps/rust
// [golang]: github.com/matzehuels/versionlens/pkg/deps/golang
// [python]: github.com/matzehuels/versionlens/pkg/deps/python
// [ruby]: github.com/matzehuels/versionlens/pkg/deps/ruby
// [dart]: github.com/matzehuels/versionlens/pkg/deps/dart
package deps
