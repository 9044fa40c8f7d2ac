package errors

import (
	"strings"
	"unicode"
)

const maxPackageNameLength = 256

// ValidatePackageName validates a dependency name before it is interpolated
// into a registry URL or used as a cache file name.
//
// The rules are ecosystem-agnostic:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //) or backslashes
//   - Maximum length of 256 characters
//
// Scoped npm names (@scope/pkg) and Go module paths (host/owner/repo) are valid.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > maxPackageNameLength {
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return New(ErrCodeInvalidPackage, "package name cannot start or end with a slash")
	}

	return nil
}

// ValidateRegistryID validates the registry half of a cache key. Registry ids
// become directory names, so they must be a single path segment.
func ValidateRegistryID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "registry id cannot be empty")
	}
	if id == "." || id == ".." || strings.ContainsAny(id, "/\\@") {
		return New(ErrCodeInvalidInput, "invalid registry id: %q", id)
	}
	return nil
}
