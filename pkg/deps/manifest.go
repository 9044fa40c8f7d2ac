package deps

import (
	"path/filepath"

	"github.com/matzehuels/versionlens/pkg/errors"
)

// ManifestParser extracts declared dependencies from manifest text.
type ManifestParser interface {
	// Parse returns the dependencies declared in content, in manifest order.
	// Only parsers backed by a structured format (JSON, TOML) return errors.
	Parse(content string) ([]Dependency, error)
	// Supports reports whether this parser handles the given base filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "package.json", "go.mod").
	Type() string
}

// DetectManifest finds a parser that supports the given file path.
// Returns an UNSUPPORTED error if no parser matches.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", name)
}

// ParseError wraps a structured-syntax failure of the given manifest type.
func ParseError(manifest string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", manifest)
}
