package deps

import (
	"path/filepath"
	"slices"
)

// Language ties one ecosystem's manifest parser to its registry.
type Language struct {
	Name          string              // Ecosystem name (e.g. "javascript")
	Registry      string              // Registry id used in cache keys (e.g. "npm", "crates.io")
	ManifestTypes []string            // Manifest base filenames handled by Parser
	Parser        ManifestParser      // Manifest parser for this ecosystem
	NewFetcher    func() Fetcher      // Registry client constructor
	PackageURL    func(string) string // Registry web page of a package
}

// Supports reports whether filename is one of the language's manifests.
func (l *Language) Supports(filename string) bool {
	return slices.Contains(l.ManifestTypes, filename)
}

// FindLanguage returns the language whose name or registry id equals name.
func FindLanguage(name string, langs []*Language) *Language {
	for _, l := range langs {
		if l.Name == name || l.Registry == name {
			return l
		}
	}
	return nil
}

// ManifestTable maps manifest base filenames to the language that owns them.
type ManifestTable map[string]*Language

// NewManifestTable builds the filename lookup table for langs.
// Earlier languages win when two declare the same filename.
func NewManifestTable(langs []*Language) ManifestTable {
	t := make(ManifestTable)
	for _, l := range langs {
		for _, name := range l.ManifestTypes {
			if _, ok := t[name]; !ok {
				t[name] = l
			}
		}
	}
	return t
}

// Lookup resolves the language for a file path by its base name.
func (t ManifestTable) Lookup(path string) (*Language, bool) {
	l, ok := t[filepath.Base(path)]
	return l, ok
}

// Files returns the sorted list of manifest filenames in the table.
func (t ManifestTable) Files() []string {
	files := make([]string, 0, len(t))
	for name := range t {
		files = append(files, name)
	}
	slices.Sort(files)
	return files
}
