package deps

import (
	"context"
	"testing"

	"github.com/matzehuels/versionlens/pkg/errors"
)

type stubParser struct {
	typeName string
	file     string
}

func (s *stubParser) Type() string                               { return s.typeName }
func (s *stubParser) Supports(filename string) bool              { return filename == s.file }
func (s *stubParser) Parse(content string) ([]Dependency, error) { return nil, nil }

func TestDetectManifest(t *testing.T) {
	npm := &stubParser{typeName: "package.json", file: "package.json"}
	cargo := &stubParser{typeName: "Cargo.toml", file: "Cargo.toml"}

	tests := []struct {
		name     string
		path     string
		wantType string
		wantErr  bool
	}{
		{"matches npm", "/project/package.json", "package.json", false},
		{"matches cargo", "crates/core/Cargo.toml", "Cargo.toml", false},
		{"no match", "/project/package-lock.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DetectManifest(tt.path, npm, cargo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnsupported) {
					t.Errorf("expected UNSUPPORTED, got %v", err)
				}
				return
			}
			if p.Type() != tt.wantType {
				t.Errorf("DetectManifest() type = %q, want %q", p.Type(), tt.wantType)
			}
		})
	}
}

func TestManifestTable(t *testing.T) {
	js := &Language{Name: "javascript", Registry: "npm", ManifestTypes: []string{"package.json"}}
	dart := &Language{Name: "dart", Registry: "pub.dev", ManifestTypes: []string{"pubspec.yaml", "pubspec.yml"}}
	shadow := &Language{Name: "shadow", Registry: "x", ManifestTypes: []string{"package.json"}}

	table := NewManifestTable([]*Language{js, dart, shadow})

	if l, ok := table.Lookup("/a/b/package.json"); !ok || l != js {
		t.Errorf("Lookup(package.json) = %v, %v; want javascript", l, ok)
	}
	if l, ok := table.Lookup("pubspec.yml"); !ok || l != dart {
		t.Errorf("Lookup(pubspec.yml) = %v, %v; want dart", l, ok)
	}
	if _, ok := table.Lookup("README.md"); ok {
		t.Error("Lookup(README.md) should not match")
	}

	files := table.Files()
	want := []string{"package.json", "pubspec.yaml", "pubspec.yml"}
	if len(files) != len(want) {
		t.Fatalf("Files() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFindLanguage(t *testing.T) {
	rust := &Language{Name: "rust", Registry: "crates.io"}
	langs := []*Language{rust}

	if FindLanguage("rust", langs) != rust {
		t.Error("FindLanguage by name failed")
	}
	if FindLanguage("crates.io", langs) != rust {
		t.Error("FindLanguage by registry failed")
	}
	if FindLanguage("cobol", langs) != nil {
		t.Error("FindLanguage should return nil for unknown language")
	}
}

func TestFetcherFunc(t *testing.T) {
	f := FetcherFunc(func(ctx context.Context, name string) (string, error) {
		return name + "-1.0.0", nil
	})
	got, err := f.LatestVersion(context.Background(), "pkg")
	if err != nil || got != "pkg-1.0.0" {
		t.Errorf("LatestVersion() = %q, %v", got, err)
	}
}

func TestParseError(t *testing.T) {
	err := ParseError("package.json", errors.New(errors.ErrCodeInternal, "boom"))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("ParseError code = %v, want INVALID_MANIFEST", errors.GetCode(err))
	}
}
