package ruby

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// gemPatterns are tried in order on every line; the first match decides the
// line's entry.
var gemPatterns = []*regexp.Regexp{
	// gem 'rails', '~> 7.0'
	regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"]\s*,\s*['"]([^'"]+)['"]`),
	// gem 'rails', ~> 7.0
	regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"]\s*,\s*((?:~>|\^)\s*[0-9][0-9A-Za-z.\-]*)`),
	// gem rails, '7.0'
	regexp.MustCompile(`^\s*gem\s+([A-Za-z0-9_\-.]+)\s*,\s*['"]([^'"]+)['"]`),
	// gem 'rails'
	regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"]`),
}

// Gemfile parses Bundler Gemfiles line by line.
type Gemfile struct{}

func (g *Gemfile) Type() string              { return "Gemfile" }
func (g *Gemfile) Supports(name string) bool { return name == "Gemfile" }

// Parse never fails; lines that declare no gem are skipped. A gem declared
// twice keeps its first declaration.
func (g *Gemfile) Parse(content string) ([]deps.Dependency, error) {
	var out []deps.Dependency
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Skip comments
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		name, spec, ok := matchGem(line)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, deps.Dependency{Name: name, Version: spec, Line: lineNo})
	}
	return out, nil
}

func matchGem(line string) (name, spec string, ok bool) {
	for _, re := range gemPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if len(m) > 2 {
			return m[1], strings.TrimSpace(m[2]), true
		}
		return m[1], deps.AnyVersion, true
	}
	return "", "", false
}
