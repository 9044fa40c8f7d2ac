// Package dart provides version lookups for Dart and Flutter packages.
//
// [Pubspec] scans pubspec.yaml without a YAML decoder so every entry keeps its
// line number. Root-level "dependencies:" and "dev_dependencies:" headers
// open a section and any other root-level line closes it. Direct children of
// an open section are packages, except the reserved flutter, sdk, git and
// path keys. Constraints are reduced to a bare version ("^1.2.0" becomes
// "1.2.0"); "any", empty values and unreadable constraints become "*".
//
// [Language] wires the parser to the [pubdev] client, which reads
// latest.version from https://pub.dev/api/packages/{name}.
//
// [pubdev]: github.com/matzehuels/versionlens/pkg/integrations/pubdev
package dart
