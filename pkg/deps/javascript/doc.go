// Package javascript provides version lookups for npm packages.
//
// # Manifest Parsing
//
// [PackageJSON] reads the dependencies, devDependencies and peerDependencies
// objects of a package.json. A string value is the specifier; an object value
// contributes its "version" field:
//
//	list, err := javascript.Language.Parser.Parse(content)
//
// Line numbers come from a separate scan of the raw text. Keys the scan cannot
// locate get line 0.
//
// # Registry
//
// [Language] wires the parser to the [npm] client, which reads
// dist-tags.latest from https://registry.npmjs.org/{name}.
//
// [npm]: github.com/matzehuels/versionlens/pkg/integrations/npm
package javascript
