package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/versionlens/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.CacheTTL() != 24*time.Hour {
		t.Errorf("CacheTTL() = %v, want 24h", s.CacheTTL())
	}
	if s.DebounceWindow() != 500*time.Millisecond {
		t.Errorf("DebounceWindow() = %v, want 500ms", s.DebounceWindow())
	}
	if !s.InlineEnabledDefault {
		t.Error("inline annotations should be enabled by default")
	}
	for _, id := range DefaultRegistries {
		if !s.RegistryEnabled(id) {
			t.Errorf("RegistryEnabled(%q) = false", id)
		}
	}
	if len(s.IgnoreList) != 0 {
		t.Errorf("IgnoreList = %v, want empty", s.IgnoreList)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestShouldIgnore(t *testing.T) {
	s := Default()
	s.IgnoreList = []string{"lodash", "@types/", ""}

	tests := map[string]bool{
		"lodash":      true,
		"lodash-es":   true,
		"@types/node": true,
		"react":       false,
		"":            false,
	}
	for pkg, want := range tests {
		if got := s.ShouldIgnore(pkg); got != want {
			t.Errorf("ShouldIgnore(%q) = %v, want %v", pkg, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("VERSIONLENS_TEST_REDIS", "localhost:6380")
	dir := t.TempDir()
	path := writeFile(t, dir, SettingsFile, `
cache_ttl_hours: 6
debounce_ms: 250
inline_enabled_default: false
enabled_registries: [npm, go]
ignore_list: ["@internal/"]
concurrency: 2
cache:
  backend: redis
  redis_addr: ${VERSIONLENS_TEST_REDIS}
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.CacheTTL() != 6*time.Hour || s.DebounceWindow() != 250*time.Millisecond {
		t.Errorf("durations = %v/%v", s.CacheTTL(), s.DebounceWindow())
	}
	if s.InlineEnabledDefault {
		t.Error("InlineEnabledDefault should be false")
	}
	if s.RegistryEnabled("pypi") || !s.RegistryEnabled("go") {
		t.Errorf("EnabledRegistries = %v", s.EnabledRegistries)
	}
	if s.Cache.RedisAddr != "localhost:6380" {
		t.Errorf("RedisAddr = %q, want env expansion", s.Cache.RedisAddr)
	}
	if s.Concurrency != 2 {
		t.Errorf("Concurrency = %d", s.Concurrency)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), SettingsFile, "debounce_ms: 100\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.CacheTTLHours != 24 || s.Cache.Backend != BackendFile || !s.InlineEnabledDefault {
		t.Errorf("unspecified keys should keep defaults: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "cache_ttl_hours: [1"},
		{"negative ttl", "cache_ttl_hours: -1"},
		{"unknown backend", "cache:\n  backend: memcached"},
		{"redis without addr", "cache:\n  backend: redis"},
		{"unknown registry", "enabled_registries: [maven]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), SettingsFile, tt.content)
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SettingsFile, "ignore_list: [left-pad]\n")
	writeFile(t, dir, IgnoreFile, "# Example ignore file\nlodash\n\n  @types/node  \n")

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	want := []string{"left-pad", "lodash", "@types/node"}
	if len(s.IgnoreList) != len(want) {
		t.Fatalf("IgnoreList = %v, want %v", s.IgnoreList, want)
	}
	for i := range want {
		if s.IgnoreList[i] != want[i] {
			t.Errorf("IgnoreList[%d] = %q, want %q", i, s.IgnoreList[i], want[i])
		}
	}
}

func TestLoadDirEmpty(t *testing.T) {
	s, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if len(s.IgnoreList) != 0 || s.CacheTTLHours != 24 {
		t.Errorf("LoadDir() on empty dir = %+v, want defaults", s)
	}
}
