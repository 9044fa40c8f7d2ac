// Package golang provides version lookups for Go modules.
//
// [GoModParser] scans go.mod line by line. Requirements inside a
// "require ( ... )" block and single-line "require path vX.Y.Z" directives are
// both reported, without their "v" prefix. The "go 1.21" toolchain directive
// is not a dependency and is skipped, as are replace, exclude and retract
// blocks.
//
// [Language] wires the parser to the [goproxy] client and strips the "v" from
// the proxy's latest version so both sides compare as plain semantic versions.
//
// [goproxy]: github.com/matzehuels/versionlens/pkg/integrations/goproxy
package golang
