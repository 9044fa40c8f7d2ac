package python

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/pypi"
)

// Language provides Python version lookups via PyPI.
// Supports pyproject.toml (PEP 621 and Poetry layouts).
var Language = &deps.Language{
	Name:          "python",
	Registry:      "pypi",
	ManifestTypes: []string{"pyproject.toml"},
	Parser:        &PyProject{},
	NewFetcher:    func() deps.Fetcher { return pypi.NewClient() },
	PackageURL:    pypi.PackageURL,
}
