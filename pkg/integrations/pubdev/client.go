package pubdev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

const registryName = "pub.dev"

// Client provides access to the pub.dev package API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a pub.dev client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/vnd.pub.v2+json"}),
		baseURL: "https://pub.dev/api",
	}
}

// LatestVersion returns latest.version for a package.
//
// pub.dev reports missing packages with an error object; any such body is
// treated as not found.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)

	var data packageResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/packages/%s", c.baseURL, url.PathEscape(pkg)), &data); err != nil {
		return "", integrations.DecodeErrorBody(err, registryName, pkg, errorMessage)
	}
	if data.Error != nil {
		return "", fmt.Errorf("%w: %w: pub.dev: package '%s' not found", integrations.ErrRegistry, integrations.ErrNotFound, pkg)
	}
	if data.Latest.Version == "" {
		return "", fmt.Errorf("%w: pub.dev package %s: no latest version found", integrations.ErrMalformed, pkg)
	}
	return data.Latest.Version, nil
}

// PackageURL returns the pub.dev page of a package.
func PackageURL(pkg string) string {
	return "https://pub.dev/packages/" + pkg
}

func errorMessage(body []byte) string {
	var data packageResponse
	if json.Unmarshal(body, &data) != nil || data.Error == nil {
		return ""
	}
	if data.Error.Message != "" {
		return data.Error.Message
	}
	return "Package not found"
}

type packageResponse struct {
	Name   string `json:"name"`
	Latest struct {
		Version string `json:"version"`
	} `json:"latest"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
