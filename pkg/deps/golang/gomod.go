package golang

import (
	"bufio"
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// requirePattern matches "path vX.Y.Z" with an optional leading require
// keyword. The captured version has no "v" prefix.
var requirePattern = regexp.MustCompile(`^\s*(?:require\s+)?(\S+)\s+v?(\d+(?:\.\d+)+\S*)`)

// nonRequireDirectives name single-line directives whose arguments look like
// "path version" but are not requirements.
var nonRequireDirectives = []string{"retract", "exclude", "replace", "toolchain", "module", "go", "godebug"}

func skipDirective(line string) bool {
	keyword, _, _ := strings.Cut(line, " ")
	keyword, _, _ = strings.Cut(keyword, "\t")
	return slices.Contains(nonRequireDirectives, keyword)
}

// GoModParser parses go.mod files. It extracts every required module,
// from require blocks and single-line require directives alike.
type GoModParser struct{}

func (p *GoModParser) Type() string              { return "go.mod" }
func (p *GoModParser) Supports(name string) bool { return name == "go.mod" }

// Parse never fails; unrecognized lines are skipped.
func (p *GoModParser) Parse(content string) ([]deps.Dependency, error) {
	var out []deps.Dependency
	inRequire := false
	inOther := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		// Block boundaries
		switch {
		case line == "require (" || line == "require(":
			inRequire = true
			continue
		case (inRequire || inOther) && line == ")":
			inRequire, inOther = false, false
			continue
		case !inRequire && strings.HasSuffix(line, "("):
			// replace, exclude and retract blocks list versions that are not requirements
			inOther = true
			continue
		}
		if inOther || skipDirective(line) {
			continue
		}

		m := requirePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, deps.Dependency{
			Name:    m[1],
			Version: m[2],
			Line:    lineNo,
		})
	}
	return out, nil
}
