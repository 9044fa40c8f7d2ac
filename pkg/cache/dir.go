package cache

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the cache directory, respecting XDG_CACHE_HOME.
// Falls back to ~/.cache/versionlens on all platforms.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "versionlens"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "versionlens"), nil
}
