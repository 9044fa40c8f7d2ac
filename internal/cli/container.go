package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"go.uber.org/dig"

	"github.com/matzehuels/versionlens/pkg/cache"
	"github.com/matzehuels/versionlens/pkg/config"
	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/state"
	"github.com/matzehuels/versionlens/pkg/watcher"
)

// params are the invocation inputs every provider may depend on.
type params struct {
	ctx     context.Context
	dir     string
	noCache bool
	logger  *log.Logger
}

// services are the wired components a command works with.
type services struct {
	Settings *config.Settings
	Store    cache.Store
	State    *state.State
	Watcher  *watcher.Watcher
}

// Close releases the persistent cache.
func (s *services) Close() error {
	return s.Store.Close()
}

// registerProviders registers the constructors of all services, bottom-up:
// settings, then the persistent cache, then state and the watcher.
func registerProviders(container *dig.Container, p params) error {
	providers := []any{
		func() params { return p },
		provideSettings,
		provideStore,
		provideState,
		provideWatcher,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

func provideSettings(p params) (*config.Settings, error) {
	s, err := config.LoadDir(p.dir)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func provideStore(p params, s *config.Settings) (cache.Store, error) {
	if p.noCache {
		return cache.NewNullCache(), nil
	}
	switch s.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(p.ctx, s.Cache.RedisAddr, s.CacheTTL())
	default:
		dir, err := cacheDir(s)
		if err != nil {
			p.logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir, s.CacheTTL())
	}
}

func provideState(s *config.Settings) *state.State {
	return state.New(s.InlineEnabledDefault)
}

func provideWatcher(p params, s *config.Settings, store cache.Store) *watcher.Watcher {
	return watcher.New(watcher.Options{
		Store:    store,
		Settings: s,
		Logger:   p.logger,
	})
}

// cacheDir returns the configured cache directory, or the XDG default.
func cacheDir(s *config.Settings) (string, error) {
	if s.Cache.Dir != "" {
		return s.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// build wires the command services for this invocation. Callers must
// Close the result.
func (c *CLI) build(ctx context.Context) (*services, error) {
	container := dig.New()
	if err := registerProviders(container, params{
		ctx:     ctx,
		dir:     c.dir,
		noCache: c.noCache,
		logger:  c.Logger,
	}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "register providers")
	}

	installDebugHooks(c.Logger)

	var svc *services
	err := container.Invoke(func(s *config.Settings, store cache.Store, st *state.State, w *watcher.Watcher) {
		svc = &services{Settings: s, Store: store, State: st, Watcher: w}
	})
	if err != nil {
		return nil, dig.RootCause(err)
	}
	return svc, nil
}
