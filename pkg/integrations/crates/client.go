package crates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

const registryName = "crates.io"

// Client provides access to the crates.io package registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Note: crates.io requires a User-Agent header; the shared client sets one.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://crates.io/api/v1",
	}
}

// LatestVersion returns the crate's max_version.
//
// The crate parameter is case-sensitive and must match the published crate
// name. An {"errors": [{"detail": ...}]} body is reported as
// [integrations.ErrRegistry] with the first detail message.
func (c *Client) LatestVersion(ctx context.Context, crate string) (string, error) {
	crate = strings.TrimSpace(crate)

	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, url.PathEscape(crate)), &data); err != nil {
		return "", integrations.DecodeErrorBody(err, registryName, crate, errorMessage)
	}
	if data.Errors != nil {
		return "", integrations.RegistryError(registryName, crate, data.firstError())
	}
	if data.Crate.MaxVersion == "" {
		return "", fmt.Errorf("%w: crate %s: no max_version found", integrations.ErrMalformed, crate)
	}
	return data.Crate.MaxVersion, nil
}

// PackageURL returns the crates.io page of a crate.
func PackageURL(crate string) string {
	return "https://crates.io/crates/" + crate
}

func errorMessage(body []byte) string {
	var data crateResponse
	if json.Unmarshal(body, &data) != nil || data.Errors == nil {
		return ""
	}
	return data.firstError()
}

type crateResponse struct {
	Crate struct {
		Name       string `json:"name"`
		MaxVersion string `json:"max_version"`
	} `json:"crate"`
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (r *crateResponse) firstError() string {
	if len(r.Errors) == 0 || r.Errors[0].Detail == "" {
		return "Unknown error"
	}
	return r.Errors[0].Detail
}
