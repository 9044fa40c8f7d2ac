package ruby

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/rubygems"
)

// Language provides Ruby version lookups via RubyGems.
// Supports Gemfile manifests.
var Language = &deps.Language{
	Name:          "ruby",
	Registry:      "rubygems",
	ManifestTypes: []string{"Gemfile"},
	Parser:        &Gemfile{},
	NewFetcher:    func() deps.Fetcher { return rubygems.NewClient() },
	PackageURL:    rubygems.PackageURL,
}
