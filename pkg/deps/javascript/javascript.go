package javascript

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/npm"
)

// Language provides JavaScript/TypeScript version lookups via npm.
// Supports package.json manifest files.
var Language = &deps.Language{
	Name:          "javascript",
	Registry:      "npm",
	ManifestTypes: []string{"package.json"},
	Parser:        &PackageJSON{},
	NewFetcher:    func() deps.Fetcher { return npm.NewClient() },
	PackageURL:    npm.PackageURL,
}
