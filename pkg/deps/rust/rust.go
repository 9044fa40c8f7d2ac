package rust

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/crates"
)

// Language provides Rust version lookups via crates.io.
// Supports Cargo.toml manifest files.
var Language = &deps.Language{
	Name:          "rust",
	Registry:      "crates.io",
	ManifestTypes: []string{"Cargo.toml"},
	Parser:        &CargoToml{},
	NewFetcher:    func() deps.Fetcher { return crates.NewClient() },
	PackageURL:    crates.PackageURL,
}
