package pypi

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
		case "/flask/json":
			w.Write([]byte(`{"info":{"name":"Flask","version":"3.0.0"}}`))
		case "/flask-login/json":
			w.Write([]byte(`{"info":{"name":"Flask-Login","version":"0.6.3"}}`))
		case "/errored/json":
			w.Write([]byte(`{"error":"project is quarantined"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	got, err := c.LatestVersion(ctx, "flask")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if got != "3.0.0" {
		t.Errorf("LatestVersion() = %q, want 3.0.0", got)
	}

	got, err = c.LatestVersion(ctx, "Flask_Login")
	if err != nil {
		t.Fatalf("LatestVersion(Flask_Login) failed: %v", err)
	}
	if got != "0.6.3" {
		t.Errorf("LatestVersion(Flask_Login) = %q, want 0.6.3", got)
	}

	_, err = c.LatestVersion(ctx, "errored")
	if !errors.Is(err, integrations.ErrRegistry) || !strings.Contains(err.Error(), "quarantined") {
		t.Errorf("expected registry error, got %v", err)
	}

	_, err = c.LatestVersion(ctx, "nonexistent")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_LatestVersionMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info":{}}`))
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).LatestVersion(context.Background(), "flask")
	if !errors.Is(err, integrations.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestPackageURL(t *testing.T) {
	if got := PackageURL("requests"); got != "https://pypi.org/project/requests" {
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
