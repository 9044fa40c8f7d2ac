package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/pkg/annotation"
	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/watcher"
)

// checkResult is the outcome of checking one manifest.
type checkResult struct {
	Path        string                  `json:"path"`
	Outcome     string                  `json:"outcome"`
	Error       string                  `json:"error,omitempty"`
	Annotations []annotation.Annotation `json:"annotations"`
}

type checkOptions struct {
	outdatedOnly   bool
	asJSON         bool
	failOnOutdated bool
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Check manifests for newer dependency releases",
		Long: `Check resolves the latest release of every dependency in the given manifests
and prints one badge per dependency line.

With no arguments, every supported manifest in --dir is checked.`,
		Example: `  versionlens check
  versionlens check package.json Cargo.toml --outdated
  versionlens check go.mod --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.build(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			files := args
			if len(files) == 0 {
				if files, err = findManifests(c.dir, svc.Watcher); err != nil {
					return err
				}
			}
			if len(files) == 0 {
				printWarning("No supported manifests in %s", c.dir)
				printDetail("Supported: %v", svc.Watcher.SupportedFiles())
				return nil
			}

			prog := newProgress(c.Logger)
			spin := newSpinner(ctx, os.Stderr, "Resolving dependencies...")
			spin.Start()
			results := runCheck(ctx, svc.Watcher, files, func(path string) {
				spin.SetMessage("Checking " + filepath.Base(path))
			})
			spin.Stop()
			if spin.Cancelled() {
				return ctx.Err()
			}
			prog.done(fmt.Sprintf("Checked %d manifests", len(results)))

			if opts.outdatedOnly {
				for i := range results {
					results[i].Annotations = outdated(results[i].Annotations)
				}
			}
			if err := writeCheck(cmd.OutOrStdout(), results, opts.asJSON); err != nil {
				return err
			}
			if n := countOutdated(results); opts.failOnOutdated && n > 0 {
				return fmt.Errorf("%d outdated dependencies", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.outdatedOnly, "outdated", false, "only show outdated dependencies")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.failOnOutdated, "fail-on-outdated", false, "exit non-zero when a dependency is outdated")

	return cmd
}

// runCheck processes each manifest once. Failures are recorded per file and
// do not stop the remaining files.
func runCheck(ctx context.Context, w *watcher.Watcher, files []string, onFile func(string)) []checkResult {
	results := make([]checkResult, 0, len(files))
	for _, f := range files {
		path, err := filepath.Abs(f)
		if err != nil {
			path = f
		}
		if onFile != nil {
			onFile(path)
		}

		res := checkResult{Path: path}
		w.Clear(path)
		outcome, err := w.OnFileChange(ctx, path)
		res.Outcome = outcome.String()
		if err != nil {
			res.Error = errors.UserMessage(err)
		}
		if outcome == watcher.Untracked {
			res.Error = "not a supported manifest"
		}
		res.Annotations, _ = w.Annotations(path)
		results = append(results, res)
	}
	return results
}

func writeCheck(w io.Writer, results []checkResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Error != "" {
			fmt.Fprintln(w, styleIconError.Render(iconError)+" "+StyleTitle.Render(filepath.Base(r.Path))+" "+StyleWarning.Render(r.Error))
			continue
		}
		writeAnnotations(w, r.Path, r.Annotations)
		fmt.Fprintln(w, "  "+StyleDim.Render(summary(r.Annotations)))
	}
	return nil
}

// findManifests lists the tracked manifests directly inside dir.
func findManifests(dir string, w *watcher.Watcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", dir)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && w.IsPackageFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// outdated keeps the annotations that are not up to date, in line order.
func outdated(list []annotation.Annotation) []annotation.Annotation {
	var out []annotation.Annotation
	for _, a := range list {
		if a.Style != annotation.UpToDate {
			out = append(out, a)
		}
	}
	return out
}

func countOutdated(results []checkResult) int {
	n := 0
	for _, r := range results {
		n += len(outdated(r.Annotations))
	}
	return n
}
