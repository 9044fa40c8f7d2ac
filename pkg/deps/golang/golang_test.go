package golang

import (
	"testing"

	"github.com/matzehuels/versionlens/pkg/deps"
)

func TestLanguageDefinition(t *testing.T) {
	if Language == nil {
		t.Fatal("Language should not be nil")
	}
	if Language.Name != "go" {
		t.Errorf("Name = %q, want %q", Language.Name, "go")
	}
	if Language.Registry != "go" {
		t.Errorf("Registry = %q, want %q", Language.Registry, "go")
	}
	if !Language.Supports("go.mod") {
		t.Error("Language should support go.mod")
	}
	if Language.Supports("go.sum") {
		t.Error("Language should not support go.sum")
	}
}

func TestGoModParser_Supports(t *testing.T) {
	parser := &GoModParser{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"go.mod", true},
		{"Go.mod", false},
		{"go.sum", false},
		{"package.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := parser.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestGoModParser_Parse(t *testing.T) {
	content := `module github.com/example/myapp

go 1.21

require (
	github.com/some/pkg v1.2.3
	github.com/spf13/cobra v1.7.0
	golang.org/x/sync v0.3.0 // indirect
)

require golang.org/x/net v0.17.0
`

	got, err := (&GoModParser{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []deps.Dependency{
		{Name: "github.com/some/pkg", Version: "1.2.3", Line: 6},
		{Name: "github.com/spf13/cobra", Version: "1.7.0", Line: 7},
		{Name: "golang.org/x/sync", Version: "0.3.0", Line: 8},
		{Name: "golang.org/x/net", Version: "0.17.0", Line: 11},
	}
	assertDeps(t, got, want)
}

func TestGoModParser_SkipsNonRequirements(t *testing.T) {
	content := `module example.com/app

go 1.22.1

toolchain go1.22.4

// github.com/commented/out v1.0.0

replace (
	github.com/old/pkg v1.0.0 => github.com/new/pkg v1.1.0
)

exclude golang.org/x/text v0.3.0

require(
	github.com/google/uuid v1.6.0
	golang.org/x/exp v0.0.0-20231006140011-7918f672742d
)

retract v1.0.1
retract [v1.2.0, v1.2.3]
exclude	golang.org/x/net v0.1.0
replace github.com/old/other v1.0.0 => ../other
godebug default=go1.21
`

	got, err := (&GoModParser{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []deps.Dependency{
		{Name: "github.com/google/uuid", Version: "1.6.0", Line: 16},
		{Name: "golang.org/x/exp", Version: "0.0.0-20231006140011-7918f672742d", Line: 17},
	}
	assertDeps(t, got, want)
}

func TestGoModParser_Empty(t *testing.T) {
	got, err := (&GoModParser{}).Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d dependencies, want 0", len(got))
	}
}

func assertDeps(t *testing.T, got, want []deps.Dependency) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d dependencies %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dep[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
