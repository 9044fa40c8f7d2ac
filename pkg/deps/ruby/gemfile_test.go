package ruby

import (
	"testing"

	"github.com/matzehuels/versionlens/pkg/deps"
)

func TestGemfile_Supports(t *testing.T) {
	parser := &Gemfile{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"Gemfile", true},
		{"gemfile", false},
		{"Gemfile.lock", false},
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

func TestGemfile_Parse(t *testing.T) {
	content := `source 'https://rubygems.org'

# Web framework
gem 'rails', '~> 7.0'
gem "puma", ">= 5.0"
gem 'pg', ~> 1.5
gem sidekiq, '7.2.0'

group :development, :test do
  gem 'rspec-rails'
  # gem 'byebug', '11.1.3'
  gem 'rails', '6.1.0'
end
`

	got, err := (&Gemfile{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []deps.Dependency{
		{Name: "rails", Version: "~> 7.0", Line: 4},
		{Name: "puma", Version: ">= 5.0", Line: 5},
		{Name: "pg", Version: "~> 1.5", Line: 6},
		{Name: "sidekiq", Version: "7.2.0", Line: 7},
		{Name: "rspec-rails", Version: "*", Line: 10},
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

func TestGemfile_Empty(t *testing.T) {
	got, err := (&Gemfile{}).Parse("source 'https://rubygems.org'\nruby '3.2.2'\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d dependencies, want 0", len(got))
	}
}
