package pypi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

const registryName = "pypi"

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://pypi.org/pypi",
	}
}

// LatestVersion returns info.version for a package.
//
// The name is normalized following PEP 503 (case-insensitive,
// underscores become hyphens) before the request is made.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = integrations.NormalizePkgName(pkg)

	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		return "", integrations.DecodeErrorBody(err, registryName, pkg, errorMessage)
	}
	if data.Error != nil {
		return "", integrations.RegistryError(registryName, pkg, data.errorText())
	}
	if data.Info.Version == "" {
		return "", fmt.Errorf("%w: pypi package %s: no version found", integrations.ErrMalformed, pkg)
	}
	return data.Info.Version, nil
}

// PackageURL returns the pypi.org project page.
func PackageURL(pkg string) string {
	return "https://pypi.org/project/" + pkg
}

func errorMessage(body []byte) string {
	var data apiResponse
	if json.Unmarshal(body, &data) != nil {
		return ""
	}
	if data.Error != nil {
		return data.errorText()
	}
	return data.Message
}

type apiResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
	Error   any    `json:"error"`
	Message string `json:"message"`
}

func (r *apiResponse) errorText() string {
	if s, ok := r.Error.(string); ok && s != "" {
		return s
	}
	return "Unknown error"
}
