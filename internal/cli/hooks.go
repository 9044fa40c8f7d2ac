package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/versionlens/pkg/observability"
)

// debugHooks logs lookups and registry requests at debug level, so that
// --verbose shows where every latest version came from.
type debugHooks struct {
	observability.NoopWatcherHooks
	observability.NoopHTTPHooks
	logger *log.Logger
}

func (h debugHooks) OnLookup(_ context.Context, registry, pkg, source string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("lookup", "registry", registry, "package", pkg, "source", source, "err", err)
		return
	}
	h.logger.Debug("lookup", "registry", registry, "package", pkg, "source", source, "duration", d.Round(time.Microsecond))
}

func (h debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("registry", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

// installDebugHooks registers debugHooks when the logger emits debug output.
func installDebugHooks(logger *log.Logger) bool {
	if logger.GetLevel() > log.DebugLevel {
		return false
	}
	h := debugHooks{logger: logger}
	observability.SetWatcherHooks(h)
	observability.SetHTTPHooks(h)
	return true
}
