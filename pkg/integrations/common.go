package integrations

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")

	// ErrRegistry is returned when the registry answers with an explicit error message.
	ErrRegistry = errors.New("registry error")

	// ErrMalformed is returned when a response body does not have the expected shape.
	ErrMalformed = errors.New("malformed response")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NormalizePkgName converts a package name to its canonical form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI.
func NormalizePkgName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// RegistryError builds an [ErrRegistry] error carrying the registry's message.
func RegistryError(registry, pkg, msg string) error {
	return fmt.Errorf("%w: %s: %s: %s", ErrRegistry, registry, pkg, msg)
}

// DecodeErrorBody extracts a registry error message from a failed response.
// The extract function reads the registry-specific error shape from the JSON
// body and returns "" when it finds nothing. When a message is found the
// result wraps both [ErrRegistry] and the status sentinel.
func DecodeErrorBody(err error, registry, pkg string, extract func(body []byte) string) error {
	var se *StatusError
	if errors.As(err, &se) && len(se.Body) > 0 && json.Valid(se.Body) {
		if msg := extract(se.Body); msg != "" {
			return fmt.Errorf("%w: %w: %s: %s: %s", ErrRegistry, se.Unwrap(), registry, pkg, msg)
		}
	}
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s package %s", err, registry, pkg)
	}
	return err
}
