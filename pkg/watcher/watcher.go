package watcher

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/versionlens/pkg/annotation"
	"github.com/matzehuels/versionlens/pkg/cache"
	"github.com/matzehuels/versionlens/pkg/config"
	"github.com/matzehuels/versionlens/pkg/debounce"
	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/deps/languages"
	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/observability"
	"github.com/matzehuels/versionlens/pkg/version"
)

// DefaultConcurrency bounds parallel registry lookups within one pass.
const DefaultConcurrency = 8

// Outcome reports what happened to a change event.
type Outcome int

const (
	Untracked Outcome = iota // no enabled parser claims the file
	Debounced                // rejected by the debouncer; nothing changed
	Dropped                  // the manifest failed to parse; previous annotations kept
	Published                // annotations were replaced
)

func (o Outcome) String() string {
	switch o {
	case Untracked:
		return "untracked"
	case Debounced:
		return "debounced"
	case Dropped:
		return "dropped"
	default:
		return "published"
	}
}

// PublishFunc receives the complete annotation list after each pass.
type PublishFunc func(path string, list []annotation.Annotation)

// Options configures a [Watcher]. Zero values select defaults.
type Options struct {
	// Languages to track. Defaults to languages.All.
	Languages []*deps.Language

	// Fetchers overrides the registry client per registry id. Languages
	// without an entry use their own NewFetcher.
	Fetchers map[string]deps.Fetcher

	// Store is the persistent cache. Defaults to a NullCache.
	Store cache.Store

	// Settings supplies the ignore list, enabled registries, and debounce
	// window. Defaults to config.Default().
	Settings *config.Settings

	// Logger receives parse and lookup failures. Defaults to log.Default().
	Logger *log.Logger

	// Concurrency bounds parallel lookups in a pass. Defaults to
	// Settings.Concurrency, then DefaultConcurrency.
	Concurrency int

	// OnPublish is called after every successful pass.
	OnPublish PublishFunc

	// Now is the debouncer clock. Defaults to time.Now.
	Now func() time.Time
}

// Watcher turns manifest change events into annotations.
//
// It owns the session cache, the debouncer, and the annotation store. The
// persistent cache is shared and is never cleared by a Watcher.
//
// All methods are safe for concurrent use.
type Watcher struct {
	langs       []*deps.Language
	table       deps.ManifestTable
	fetchers    map[string]deps.Fetcher
	store       cache.Store
	session     *cache.Memory
	debouncer   *debounce.Debouncer
	annotations *annotation.Store
	settings    config.Settings
	logger      *log.Logger
	concurrency int
	onPublish   PublishFunc
}

// New creates a Watcher.
func New(opts Options) *Watcher {
	langs := opts.Languages
	if len(langs) == 0 {
		langs = languages.All
	}
	settings := config.Default()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	store := opts.Store
	if store == nil {
		store = cache.NewNullCache()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = settings.Concurrency
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	fetchers := make(map[string]deps.Fetcher, len(langs))
	for _, l := range langs {
		if f, ok := opts.Fetchers[l.Registry]; ok {
			fetchers[l.Registry] = f
		} else if l.NewFetcher != nil {
			fetchers[l.Registry] = l.NewFetcher()
		}
	}

	d := debounce.New(settings.DebounceWindow())
	if opts.Now != nil {
		d.WithClock(opts.Now)
	}

	return &Watcher{
		langs:       langs,
		table:       deps.NewManifestTable(langs),
		fetchers:    fetchers,
		store:       store,
		session:     cache.NewMemory(),
		debouncer:   d,
		annotations: annotation.NewStore(),
		settings:    settings,
		logger:      logger,
		concurrency: concurrency,
		onPublish:   opts.OnPublish,
	}
}

// OnChange handles an edit of the document at path with the given content.
//
// Untracked files and debounced events return without side effects. A parse
// failure is logged and returned with [Dropped]; the previous annotations for
// path stay in place. Otherwise every dependency is resolved and compared,
// and the resulting list replaces the stored one.
func (w *Watcher) OnChange(ctx context.Context, path, content string) (Outcome, error) {
	lang, ok := w.language(path)
	if !ok {
		return Untracked, nil
	}
	if !w.debouncer.ShouldProceed(path) {
		w.logger.Debug("debounced", "path", path)
		return Debounced, nil
	}
	return w.process(ctx, path, content, lang)
}

// OnFileChange reads path from disk and handles it like [Watcher.OnChange].
func (w *Watcher) OnFileChange(ctx context.Context, path string) (Outcome, error) {
	if _, ok := w.language(path); !ok {
		return Untracked, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dropped, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return w.OnChange(ctx, path, string(data))
}

// Refresh reprocesses path regardless of recent activity.
func (w *Watcher) Refresh(ctx context.Context, path, content string) (Outcome, error) {
	w.debouncer.Reset(path)
	return w.OnChange(ctx, path, content)
}

// Clear forgets the annotations and debounce record of path, so the next
// change is processed.
func (w *Watcher) Clear(path string) {
	w.annotations.Clear(path)
	w.debouncer.Reset(path)
}

// ClearAll empties the annotation store, the debouncer, and the session
// cache. The persistent cache is left alone.
func (w *Watcher) ClearAll() {
	w.annotations.ClearAll()
	w.debouncer.Clear()
	w.session.Clear()
}

// Annotations returns the current annotations of path.
func (w *Watcher) Annotations(path string) ([]annotation.Annotation, bool) {
	return w.annotations.Get(path)
}

// HasAnnotations reports whether path has at least one annotation.
func (w *Watcher) HasAnnotations(path string) bool {
	return w.annotations.Has(path)
}

// Count returns the number of annotations for path.
func (w *Watcher) Count(path string) int {
	return w.annotations.Count(path)
}

// Paths returns the documents that currently have annotations.
func (w *Watcher) Paths() []string {
	return w.annotations.Paths()
}

// IsPackageFile reports whether changes to the named file are tracked.
func (w *Watcher) IsPackageFile(name string) bool {
	_, ok := w.language(name)
	return ok
}

// SupportedFiles returns the tracked manifest file names, sorted.
func (w *Watcher) SupportedFiles() []string {
	var files []string
	for _, name := range w.table.Files() {
		if w.IsPackageFile(name) {
			files = append(files, name)
		}
	}
	return files
}

// Language returns the language that tracks path.
func (w *Watcher) Language(path string) (*deps.Language, bool) {
	return w.language(path)
}

// ProcessDependency resolves the latest version of one dependency and
// builds its annotation. It uses the same cache chain as a full pass.
func (w *Watcher) ProcessDependency(ctx context.Context, lang *deps.Language, dep deps.Dependency) (annotation.Annotation, error) {
	latest, err := w.resolve(ctx, lang, dep.Name)
	if err != nil {
		return annotation.Annotation{}, err
	}
	return annotation.FromComparison(dep.Name, dep.Line, version.Compare(dep.Version, latest)), nil
}

func (w *Watcher) language(path string) (*deps.Language, bool) {
	lang, ok := w.table.Lookup(path)
	if !ok || !w.settings.RegistryEnabled(lang.Registry) {
		return nil, false
	}
	return lang, true
}

func (w *Watcher) process(ctx context.Context, path, content string, lang *deps.Language) (Outcome, error) {
	passID := uuid.NewString()
	logger := w.logger.With("pass", passID[:8], "path", path)
	hooks := observability.Watcher()
	start := time.Now()

	list, err := lang.Parser.Parse(content)
	if err != nil {
		logger.Warn("parse failed", "manifest", lang.Parser.Type(), "err", err)
		hooks.OnPassComplete(ctx, passID, path, 0, time.Since(start), err)
		return Dropped, err
	}
	hooks.OnPassStart(ctx, passID, path, len(list))

	results := make([]*annotation.Annotation, len(list))
	g := new(errgroup.Group)
	g.SetLimit(w.concurrency)
	for i, dep := range list {
		if w.settings.ShouldIgnore(dep.Name) {
			logger.Debug("ignored", "package", dep.Name)
			continue
		}
		g.Go(func() error {
			a, err := w.ProcessDependency(ctx, lang, dep)
			if err != nil {
				logger.Warn("lookup failed", "package", dep.Name, "registry", lang.Registry, "err", err)
				return nil
			}
			results[i] = &a
			return nil
		})
	}
	_ = g.Wait()

	published := make([]annotation.Annotation, 0, len(list))
	for _, a := range results {
		if a != nil {
			published = append(published, *a)
		}
	}
	w.annotations.Replace(path, published)
	if w.onPublish != nil {
		w.onPublish(path, published)
	}

	logger.Debug("published annotations",
		"dependencies", len(list),
		"annotations", len(published),
		"duration", time.Since(start))
	hooks.OnPassComplete(ctx, passID, path, len(published), time.Since(start), nil)
	return Published, nil
}

// resolve returns the latest version of name: session cache first, then the
// persistent cache, then the registry. Persistent cache failures count as misses.
func (w *Watcher) resolve(ctx context.Context, lang *deps.Language, name string) (string, error) {
	if err := errors.ValidatePackageName(name); err != nil {
		return "", err
	}
	hooks := observability.Watcher()
	start := time.Now()
	key := cache.Key(lang.Registry, name)

	if v, ok := w.session.Get(key); ok {
		hooks.OnLookup(ctx, lang.Registry, name, observability.SourceSession, time.Since(start), nil)
		return v, nil
	}

	if v, ok, err := w.store.Get(ctx, key); err != nil {
		w.logger.Debug("cache read failed", "key", key, "err", err)
	} else if ok {
		w.session.Set(key, v)
		hooks.OnLookup(ctx, lang.Registry, name, observability.SourceCache, time.Since(start), nil)
		return v, nil
	}

	fetcher, ok := w.fetchers[lang.Registry]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupported, "no registry client for %s", lang.Registry)
	}
	latest, err := fetcher.LatestVersion(ctx, name)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeLookup, err, "%s %s", lang.Registry, name)
		hooks.OnLookup(ctx, lang.Registry, name, observability.SourceRegistry, time.Since(start), err)
		return "", err
	}

	w.session.Set(key, latest)
	if err := w.store.Set(ctx, key, latest); err != nil {
		w.logger.Debug("cache write failed", "key", key, "err", err)
	}
	hooks.OnLookup(ctx, lang.Registry, name, observability.SourceRegistry, time.Since(start), nil)
	return latest, nil
}
