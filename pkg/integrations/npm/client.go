package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

const registryName = "npm"

// Client looks up packages on the npm registry.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm registry client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://registry.npmjs.org",
	}
}

// LatestVersion returns the version tagged "latest" in the package's dist-tags.
//
// Scoped names such as "@types/node" are escaped into a single path segment.
// An explicit {"error": ...} body is reported as [integrations.ErrRegistry].
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)

	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+url.PathEscape(pkg), &data); err != nil {
		return "", integrations.DecodeErrorBody(err, registryName, pkg, errorMessage)
	}
	if data.Error != "" {
		return "", integrations.RegistryError(registryName, pkg, formatError(data.Error, data.Reason))
	}
	if data.DistTags.Latest == "" {
		return "", fmt.Errorf("%w: npm package %s: no latest version found", integrations.ErrMalformed, pkg)
	}
	return data.DistTags.Latest, nil
}

// PackageURL returns the npmjs.com page of a package.
func PackageURL(pkg string) string {
	return "https://www.npmjs.com/package/" + pkg
}

func errorMessage(body []byte) string {
	var data registryResponse
	if json.Unmarshal(body, &data) != nil || data.Error == "" {
		return ""
	}
	return formatError(data.Error, data.Reason)
}

func formatError(msg, reason string) string {
	if reason == "" {
		return msg
	}
	return msg + " - " + reason
}

type registryResponse struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
