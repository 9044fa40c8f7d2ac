package dart

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// reservedKeys are section children that never name a hosted package.
var reservedKeys = map[string]bool{
	"flutter": true,
	"sdk":     true,
	"git":     true,
	"path":    true,
}

var entryPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:\s*(.*)$`)

type section int

const (
	sectionNone section = iota
	sectionDependencies
	sectionDevDependencies
)

// Pubspec parses pubspec.yaml files with an indentation-aware line scan of
// the dependencies and dev_dependencies sections.
type Pubspec struct{}

func (p *Pubspec) Type() string { return "pubspec.yaml" }
func (p *Pubspec) Supports(name string) bool {
	return name == "pubspec.yaml" || name == "pubspec.yml"
}

// Parse never fails; lines that are not direct section entries are skipped.
func (p *Pubspec) Parse(content string) ([]deps.Dependency, error) {
	var out []deps.Dependency
	current := sectionNone
	childIndent := -1

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
		if indent == 0 {
			current = rootSection(trimmed)
			childIndent = -1
			continue
		}
		if current == sectionNone {
			continue
		}

		// Only direct children of the section header are packages.
		if childIndent < 0 {
			childIndent = indent
		}
		if indent != childIndent {
			continue
		}

		m := entryPattern.FindStringSubmatch(trimmed)
		if m == nil || reservedKeys[m[1]] {
			continue
		}
		out = append(out, deps.Dependency{
			Name:    m[1],
			Version: bareVersion(m[2]),
			Line:    lineNo,
		})
	}
	return out, nil
}

func rootSection(line string) section {
	switch stripComment(line) {
	case "dependencies:":
		return sectionDependencies
	case "dev_dependencies:", "dev-dependencies:":
		return sectionDevDependencies
	default:
		return sectionNone
	}
}

// bareVersion reduces a constraint such as "^1.2.0", "'>=2.0.0 <3.0.0'" or
// "any" to a plain version, or "*" when none can be read.
func bareVersion(value string) string {
	v := strings.Trim(stripComment(value), `"'`)
	v = strings.TrimLeft(v, "^~><= ")
	if i := strings.IndexAny(v, " \t,"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "any" {
		return deps.AnyVersion
	}
	if _, err := semver.NewVersion(v); err != nil {
		return deps.AnyVersion
	}
	return v
}

func stripComment(s string) string {
	if i := strings.Index(s, " #"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
