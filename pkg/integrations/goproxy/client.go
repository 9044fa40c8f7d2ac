package goproxy

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

// Client provides access to the Go module proxy API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Go module proxy client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://proxy.golang.org",
	}
}

// LatestVersion returns the newest version listed by the proxy's @v/list
// endpoint, with its "v" prefix intact (e.g. "v1.8.0").
//
// A trailing "@version" on mod is ignored. Module paths with uppercase
// letters are escaped per the proxy protocol (uppercase becomes !lowercase).
//
// Returns:
//   - [integrations.ErrNotFound] if the module doesn't exist or lists no versions
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
func (c *Client) LatestVersion(ctx context.Context, mod string) (string, error) {
	mod = normalizePath(mod)
	escaped, err := module.EscapePath(mod)
	if err != nil {
		return "", fmt.Errorf("go module %s: %w", mod, err)
	}

	body, err := c.GetText(ctx, fmt.Sprintf("%s/%s/@v/list", c.baseURL, escaped))
	if err != nil {
		return "", integrations.DecodeErrorBody(err, "go", mod, noMessage)
	}

	latest := pickLatest(parseList(body))
	if latest == "" {
		return "", fmt.Errorf("%w: go module %s: no versions found", integrations.ErrNotFound, mod)
	}
	return latest, nil
}

// PackageURL returns the pkg.go.dev page of a module.
func PackageURL(mod string) string {
	return "https://pkg.go.dev/" + mod
}

// parseList returns the non-empty lines of a version list, each stripped of
// a trailing ".mod".
func parseList(body string) []string {
	var versions []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSuffix(strings.TrimSpace(scanner.Text()), ".mod")
		if line != "" {
			versions = append(versions, line)
		}
	}
	return versions
}

// pickLatest prefers the highest stable release, then the highest
// prerelease, and falls back to the last line when nothing is valid semver.
func pickLatest(versions []string) string {
	var stable, pre string
	for _, v := range versions {
		if !semver.IsValid(v) {
			continue
		}
		if semver.Prerelease(v) == "" {
			if stable == "" || semver.Compare(v, stable) > 0 {
				stable = v
			}
		} else if pre == "" || semver.Compare(v, pre) > 0 {
			pre = v
		}
	}
	switch {
	case stable != "":
		return stable
	case pre != "":
		return pre
	case len(versions) > 0:
		return versions[len(versions)-1]
	}
	return ""
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexByte(path, '@'); i >= 0 {
		path = path[:i]
	}
	return path
}

// The proxy answers failures with plain text.
func noMessage([]byte) string { return "" }
