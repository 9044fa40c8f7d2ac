package languages

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		path     string
		registry string
		ok       bool
	}{
		{"/app/package.json", "npm", true},
		{"crates/core/Cargo.toml", "crates.io", true},
		{"go.mod", "go", true},
		{"pyproject.toml", "pypi", true},
		{"Gemfile", "rubygems", true},
		{"mobile/pubspec.yaml", "pub.dev", true},
		{"mobile/pubspec.yml", "pub.dev", true},
		{"go.sum", "", false},
		{"requirements.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, ok := ForFile(tt.path)
			if ok != tt.ok {
				t.Fatalf("ForFile(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && lang.Registry != tt.registry {
				t.Errorf("ForFile(%q) registry = %q, want %q", tt.path, lang.Registry, tt.registry)
			}
		})
	}
}

func TestFind(t *testing.T) {
	if l := Find("rust"); l == nil || l.Registry != "crates.io" {
		t.Errorf("Find(rust) = %v", l)
	}
	if l := Find("pub.dev"); l == nil || l.Name != "dart" {
		t.Errorf("Find(pub.dev) = %v", l)
	}
	if Find("cobol") != nil {
		t.Error("Find(cobol) should be nil")
	}
}

func TestAllLanguagesComplete(t *testing.T) {
	for _, l := range All {
		if l.Parser == nil || l.NewFetcher == nil || l.PackageURL == nil {
			t.Errorf("language %s is missing a parser, fetcher or package URL", l.Name)
		}
		for _, file := range l.ManifestTypes {
			if !l.Parser.Supports(file) {
				t.Errorf("language %s parser does not support its manifest %s", l.Name, file)
			}
		}
	}
	if got := len(Registries()); got != 6 {
		t.Errorf("Registries() = %d ids, want 6", got)
	}
}

func TestExampleManifests(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "examples", "manifest")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Skipf("examples not available: %v", err)
	}

	parsed := 0
	for _, e := range entries {
		lang, ok := ForFile(e.Name())
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		list, err := lang.Parser.Parse(string(data))
		if err != nil {
			t.Errorf("%s: %v", e.Name(), err)
			continue
		}
		if len(list) == 0 {
			t.Errorf("%s: no dependencies", e.Name())
		}
		for _, d := range list {
			if d.Line < 1 {
				t.Errorf("%s: %s has no line", e.Name(), d.Name)
			}
		}
		parsed++
	}
	if parsed != len(All) {
		t.Errorf("parsed %d example manifests, want one per language (%d)", parsed, len(All))
	}
}
