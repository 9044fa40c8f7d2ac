package rust

import (
	"testing"

	"github.com/matzehuels/versionlens/pkg/deps"
	"github.com/matzehuels/versionlens/pkg/errors"
)

func TestCargoToml_Supports(t *testing.T) {
	parser := &CargoToml{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"Cargo.toml", true},
		{"Cargo.lock", false},
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

func TestCargoToml_Parse(t *testing.T) {
	content := `[package]
name = "my-crate"
version = "0.1.0"

[dependencies]
serde = "1.0"
tokio = { version = "1.0", features = ["full"] }
local = { path = "../local" }

[dev-dependencies]
pretty_assertions = "1.0"

[build-dependencies]
cc = "1.0.83"
`

	got, err := (&CargoToml{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []deps.Dependency{
		{Name: "serde", Version: "1.0", Line: 6},
		{Name: "tokio", Version: "1.0", Line: 7},
		{Name: "local", Version: "*", Line: 8},
		{Name: "pretty_assertions", Version: "1.0", Line: 11},
		{Name: "cc", Version: "1.0.83", Line: 14},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d dependencies %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dep[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCargoToml_DottedTableFallsBackToLineOne(t *testing.T) {
	content := `[dependencies.serde]
version = "1.0.190"
features = ["derive"]
`
	got, err := (&CargoToml{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d dependencies, want 1", len(got))
	}
	if got[0].Version != "1.0.190" || got[0].Line != 1 {
		t.Errorf("got %+v, want version 1.0.190 on line 1", got[0])
	}
}

func TestCargoToml_DottedTablesKeepDeclarationOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "dotted tables",
			content: "[dependencies.zeta]\nversion = \"1.0\"\n\n[dependencies.alpha]\nversion = \"2.0\"\n",
			want:    []string{"zeta", "alpha"},
		},
		{
			name:    "dotted tables per section",
			content: "[dependencies.tokio]\nversion = \"1\"\n\n[dependencies.anyhow]\nversion = \"1\"\n\n[dev-dependencies.proptest]\nversion = \"1\"\n",
			want:    []string{"tokio", "anyhow", "proptest"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&CargoToml{}).Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d dependencies, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name || got[i].Line != 1 {
					t.Errorf("dep[%d] = %+v, want %s on line 1", i, got[i], name)
				}
			}
		})
	}
}

func TestCargoToml_Empty(t *testing.T) {
	got, err := (&CargoToml{}).Parse("[package]\nname = \"x\"\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d dependencies, want 0", len(got))
	}
}

func TestCargoToml_Malformed(t *testing.T) {
	_, err := (&CargoToml{}).Parse("[dependencies\nserde = ")
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("expected INVALID_MANIFEST, got %v", err)
	}
}
