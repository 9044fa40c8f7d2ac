// Package cli implements the versionlens command-line interface.
//
// The commands share one set of services (settings, persistent cache, inline
// state, watcher) built by a dig container from the flags of the invocation:
//   - check: resolve the dependencies of manifests once and print badges
//   - watch: poll manifests and redraw badges in a terminal UI
//   - serve: expose the watcher over HTTP for editor integrations
//   - cache: clear or locate the persistent cache
//   - url: print the registry page of a package
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = buildinfo.Name

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	dir     string
	noCache bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), dir: "."}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Versionlens shows which dependencies have newer releases",
		Long:         `Versionlens reads package manifests (package.json, Cargo.toml, pyproject.toml, Gemfile, pubspec.yaml, go.mod), looks up the latest release of every dependency, and annotates each line as up to date, outdated, or behind by a major version.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.dir, "dir", ".", "directory holding .versionlens.yaml and .versionlens-ignore")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the persistent version cache")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.urlCommand())
	root.AddCommand(c.completionCommand())

	return root
}
