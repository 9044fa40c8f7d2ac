package rubygems

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

const registryName = "rubygems"

// Client provides access to the RubyGems.org API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a RubyGems client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://rubygems.org/api/v1",
	}
}

// LatestVersion returns the current version of a gem.
func (c *Client) LatestVersion(ctx context.Context, gem string) (string, error) {
	gem = strings.TrimSpace(gem)

	var data gemResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/gems/%s.json", c.baseURL, url.PathEscape(gem)), &data); err != nil {
		return "", integrations.DecodeErrorBody(err, registryName, gem, errorMessage)
	}
	if data.Error != "" {
		return "", integrations.RegistryError(registryName, gem, data.Error)
	}
	if data.Version == "" {
		return "", fmt.Errorf("%w: gem %s: no version found", integrations.ErrMalformed, gem)
	}
	return data.Version, nil
}

// PackageURL returns the rubygems.org page of a gem.
func PackageURL(gem string) string {
	return "https://rubygems.org/gems/" + gem
}

func errorMessage(body []byte) string {
	var data gemResponse
	if json.Unmarshal(body, &data) != nil {
		return ""
	}
	return data.Error
}

type gemResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Error   string `json:"error"`
}
