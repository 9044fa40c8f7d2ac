// Package annotation turns version comparisons into inline hints and keeps
// the current hints of each open manifest.
//
// # Styles
//
//   - [UpToDate] (green): latest satisfies the specifier
//   - [Outdated] (yellow): minor or patch gap, or the comparison failed
//   - [MajorDiff] (red): latest is a new major version
//
// # Store
//
// [Store] maps a document path to its annotation list. Every processing pass
// calls [Store.Replace] with the complete list for that document; entries
// are never merged across passes.
package annotation
