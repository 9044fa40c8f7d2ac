// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// This package resolves the latest release of a Python package from PyPI
// (https://pypi.org), the official repository for Python packages.
//
// # Usage
//
//	client := pypi.NewClient()
//	latest, err := client.LatestVersion(ctx, "fastapi")
//
// # Name Normalization
//
// Package names are normalized per PEP 503: "Flask_Login" and "flask-login"
// resolve to the same project.
package pypi
