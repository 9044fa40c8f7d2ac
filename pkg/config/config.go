// Package config loads versionlens settings.
//
// Settings come from an optional YAML file (.versionlens.yaml) and an
// optional ignore file (.versionlens-ignore) in the project directory:
//
//	cache_ttl_hours: 24
//	debounce_ms: 500
//	inline_enabled_default: true
//	enabled_registries: [npm, crates.io, pypi, rubygems, pub.dev, go]
//	ignore_list: ["@types/"]
//	concurrency: 8
//	cache:
//	  backend: redis        # file | redis | none
//	  redis_addr: ${REDIS_ADDR}
//
// String values may reference environment variables as ${NAME}.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/versionlens/pkg/errors"
)

// File names looked up by [LoadDir].
const (
	SettingsFile = ".versionlens.yaml"
	IgnoreFile   = ".versionlens-ignore"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultRegistries lists every registry versionlens knows.
var DefaultRegistries = []string{"npm", "crates.io", "pypi", "rubygems", "pub.dev", "go"}

// Settings is the effective configuration.
type Settings struct {
	CacheTTLHours        int         `yaml:"cache_ttl_hours"`
	DebounceMS           int         `yaml:"debounce_ms"`
	InlineEnabledDefault bool        `yaml:"inline_enabled_default"`
	EnabledRegistries    []string    `yaml:"enabled_registries"`
	IgnoreList           []string    `yaml:"ignore_list"`
	Concurrency          int         `yaml:"concurrency"`
	Cache                CacheConfig `yaml:"cache"`
}

// CacheConfig selects the persistent cache backend.
type CacheConfig struct {
	Backend   string `yaml:"backend"`    // file, redis, or none
	Dir       string `yaml:"dir"`        // file backend root; empty means the XDG default
	RedisAddr string `yaml:"redis_addr"` // host:port for the redis backend
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		CacheTTLHours:        24,
		DebounceMS:           500,
		InlineEnabledDefault: true,
		EnabledRegistries:    slices.Clone(DefaultRegistries),
		Concurrency:          8,
		Cache:                CacheConfig{Backend: BackendFile},
	}
}

// CacheTTL returns the persistent cache TTL.
func (s Settings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLHours) * time.Hour
}

// DebounceWindow returns the per-document debounce window.
func (s Settings) DebounceWindow() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// ShouldIgnore reports whether pkg matches an ignore entry exactly or by prefix.
func (s Settings) ShouldIgnore(pkg string) bool {
	for _, ignored := range s.IgnoreList {
		if ignored != "" && strings.HasPrefix(pkg, ignored) {
			return true
		}
	}
	return false
}

// RegistryEnabled reports whether lookups against registry are allowed.
func (s Settings) RegistryEnabled(registry string) bool {
	return slices.Contains(s.EnabledRegistries, registry)
}

// Load reads a settings file on top of [Default].
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	s.expandEnv()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadDir loads the settings and ignore files from dir. Missing files are
// not an error; entries from the ignore file are appended to ignore_list.
func LoadDir(dir string) (Settings, error) {
	s := Default()
	path := filepath.Join(dir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		if s, err = Load(path); err != nil {
			return s, err
		}
	}

	ignored, err := ReadIgnoreFile(filepath.Join(dir, IgnoreFile))
	if err != nil {
		return s, err
	}
	s.IgnoreList = append(s.IgnoreList, ignored...)
	return s, nil
}

// ReadIgnoreFile returns the entries of an ignore file: one package name or
// prefix per line, blank lines and # comments skipped. A missing file yields
// no entries.
func ReadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return entries, nil
}

// Validate checks value ranges and backend requirements.
func (s Settings) Validate() error {
	switch {
	case s.CacheTTLHours < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl_hours must not be negative")
	case s.DebounceMS < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "debounce_ms must not be negative")
	case s.Concurrency < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must not be negative")
	}

	switch s.Cache.Backend {
	case BackendFile, BackendNone, "":
	case BackendRedis:
		if s.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", s.Cache.Backend)
	}

	for _, id := range s.EnabledRegistries {
		if !slices.Contains(DefaultRegistries, id) {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown registry %q in enabled_registries", id)
		}
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

func (s *Settings) expandEnv() {
	s.Cache.Dir = expand(s.Cache.Dir)
	s.Cache.RedisAddr = expand(s.Cache.RedisAddr)
	for i := range s.IgnoreList {
		s.IgnoreList[i] = expand(s.IgnoreList[i])
	}
}

// expand replaces ${NAME} with the variable's value; unset variables become "".
func expand(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
