package rubygems

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

func TestClient_LatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gems/rails.json":
			w.Write([]byte(`{"name":"rails","version":"7.1.2","downloads":500000000}`))
		case "/gems/yanked.json":
			w.Write([]byte(`{"error":"This gem has been yanked"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("This rubygem could not be found."))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	got, err := c.LatestVersion(ctx, "rails")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if got != "7.1.2" {
		t.Errorf("LatestVersion() = %q, want 7.1.2", got)
	}

	_, err = c.LatestVersion(ctx, "yanked")
	if !errors.Is(err, integrations.ErrRegistry) || !strings.Contains(err.Error(), "yanked") {
		t.Errorf("expected registry error, got %v", err)
	}

	_, err = c.LatestVersion(ctx, "nonexistent")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, integrations.ErrRegistry) {
		t.Errorf("plain-text 404 should not be a registry error: %v", err)
	}
}

func TestPackageURL(t *testing.T) {
	if got := PackageURL("rake"); got != "https://rubygems.org/gems/rake" {
		t.Errorf("PackageURL() = %q", got)
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: serverURL,
	}
}
