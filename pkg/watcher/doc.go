// Package watcher ties manifest parsing, version lookup, comparison, and
// annotation publishing together.
//
// # Pass
//
// A change event for a tracked manifest runs one pass:
//
//  1. Look up the language by the file's base name; unknown files are ignored
//  2. Consult the debouncer keyed by path; rejected events are dropped
//  3. Parse the content; a parse error keeps the previous annotations
//  4. Resolve each dependency (session cache, persistent cache, registry)
//  5. Compare and build one annotation per resolved dependency
//  6. Replace the document's annotation list
//
// Lookups within a pass run in parallel up to a configurable limit. A failed
// lookup is logged and produces no annotation; it never aborts the pass.
// There is no retry: the next edit or an explicit [Watcher.Refresh] tries again.
//
// # Usage
//
//	w := watcher.New(watcher.Options{Store: fileCache, Logger: logger})
//	outcome, err := w.OnChange(ctx, "/app/package.json", content)
//	list, _ := w.Annotations("/app/package.json")
package watcher
