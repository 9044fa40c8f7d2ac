package golang

import (
	"context"
	"strings"

	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/integrations/goproxy"
)

// Language provides Go version lookups via the Go module proxy.
// Supports go.mod manifest files.
var Language = &deps.Language{
	Name:          "go",
	Registry:      "go",
	ManifestTypes: []string{"go.mod"},
	Parser:        &GoModParser{},
	NewFetcher:    func() deps.Fetcher { return fetcher{goproxy.NewClient()} },
	PackageURL:    goproxy.PackageURL,
}

// fetcher strips the "v" prefix so proxy versions compare against the bare
// versions the parser extracts.
type fetcher struct{ *goproxy.Client }

func (f fetcher) LatestVersion(ctx context.Context, name string) (string, error) {
	v, err := f.Client.LatestVersion(ctx, name)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(v, "v"), nil
}
