// Package languages provides the complete list of supported ecosystems.
//
// This package exists to break import cycles: the individual language packages
// (javascript, rust, etc.) import pkg/deps, so pkg/deps cannot import them back.
// Instead, consumers that need the full language list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/versionlens/pkg/deps/languages"
//
//	if lang, ok := languages.ForFile("/src/app/package.json"); ok {
//	    fmt.Println(lang.Registry) // npm
//	}
package languages

import (
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/deps/dart"
	"github.com/matzehuels/versionlens/pkg/deps/golang"
	"github.com/matzehuels/versionlens/pkg/deps/javascript"
	"github.com/matzehuels/versionlens/pkg/deps/python"
	"github.com/matzehuels/versionlens/pkg/deps/ruby"
	"github.com/matzehuels/versionlens/pkg/deps/rust"
)

// All is the canonical list of supported package ecosystems.
var All = []*deps.Language{
	javascript.Language,
	rust.Language,
	python.Language,
	ruby.Language,
	dart.Language,
	golang.Language,
}

var table = deps.NewManifestTable(All)

// Find returns the Language with the given name or registry id, or nil.
func Find(name string) *deps.Language {
	return deps.FindLanguage(name, All)
}

// ForFile returns the Language whose manifest has the base name of path.
func ForFile(path string) (*deps.Language, bool) {
	return table.Lookup(path)
}

// Registries returns the registry ids of all languages, in [All] order.
func Registries() []string {
	ids := make([]string, len(All))
	for i, l := range All {
		ids[i] = l.Registry
	}
	return ids
}
