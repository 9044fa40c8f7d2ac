// Package rust provides version lookups for Rust crates.
//
// [CargoToml] decodes Cargo.toml with BurntSushi/toml and reads the
// dependencies, dev-dependencies and build-dependencies tables. A table value
// contributes its version key; a table without one, or any other shape, is
// reported as "*". Each dependency is located at the first line containing
// "<name> = ", falling back to line 1.
//
// [Language] wires the parser to the [crates] client, which reads
// crate.max_version from https://crates.io/api/v1/crates/{name}.
//
// [crates]: github.com/matzehuels/versionlens/pkg/integrations/crates
package rust
