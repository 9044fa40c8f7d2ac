package crates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/versionlens/pkg/integrations"
)

func TestNewClient(t *testing.T) {
	c := NewClient()
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
}

func TestClient_LatestVersion(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/crates/serde":
			w.Write([]byte(`{"crate":{"name":"serde","max_version":"1.0.195"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[{"detail":"Not Found"}]}`))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	got, err := c.LatestVersion(context.Background(), "serde")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if got != "1.0.195" {
		t.Errorf("LatestVersion() = %q, want 1.0.195", got)
	}
	if userAgent == "" {
		t.Error("expected User-Agent header to be sent")
	}

	_, err = c.LatestVersion(context.Background(), "nope")
	if !errors.Is(err, integrations.ErrNotFound) || !errors.Is(err, integrations.ErrRegistry) {
		t.Fatalf("expected registry not-found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("error should carry registry detail: %v", err)
	}
}

func TestClient_LatestVersionErrorsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[]}`))
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).LatestVersion(context.Background(), "x")
	if !errors.Is(err, integrations.ErrRegistry) {
		t.Fatalf("expected ErrRegistry, got %v", err)
	}
	if !strings.Contains(err.Error(), "Unknown error") {
		t.Errorf("error = %v, want Unknown error", err)
	}
}

func TestClient_LatestVersionMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crate":{"name":"serde"}}`))
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).LatestVersion(context.Background(), "serde")
	if !errors.Is(err, integrations.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestPackageURL(t *testing.T) {
	if got := PackageURL("tokio"); got != "https://crates.io/crates/tokio" {
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
