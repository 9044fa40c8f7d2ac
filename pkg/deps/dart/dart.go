package dart

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/pubdev"
)

// Language provides Dart and Flutter version lookups via pub.dev.
// Supports pubspec.yaml (and the rarer pubspec.yml).
var Language = &deps.Language{
	Name:          "dart",
	Registry:      "pub.dev",
	ManifestTypes: []string{"pubspec.yaml", "pubspec.yml"},
	Parser:        &Pubspec{},
	NewFetcher:    func() deps.Fetcher { return pubdev.NewClient() },
	PackageURL:    pubdev.PackageURL,
}
