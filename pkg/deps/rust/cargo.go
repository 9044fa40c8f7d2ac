package rust

import (
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// CargoToml parses Cargo.toml files. It extracts dependencies,
// dev-dependencies and build-dependencies.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) Supports(name string) bool { return name == "Cargo.toml" }

func (c *CargoToml) Parse(content string) ([]deps.Dependency, error) {
	var cargo cargoFile
	md, err := toml.Decode(content, &cargo)
	if err != nil {
		return nil, deps.ParseError(c.Type(), err)
	}

	lines := strings.Split(content, "\n")
	var out []deps.Dependency
	for _, t := range []struct {
		name  string
		table map[string]any
	}{
		{"dependencies", cargo.Dependencies},
		{"dev-dependencies", cargo.DevDependencies},
		{"build-dependencies", cargo.BuildDependencies},
	} {
		out = append(out, tableDeps(t.table, keyOrder(md, t.name), lines)...)
	}
	return out, nil
}

// keyOrder returns the direct keys of table in document order.
func keyOrder(md toml.MetaData, table string) []string {
	var order []string
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == table && !slices.Contains(order, key[1]) {
			order = append(order, key[1])
		}
	}
	return order
}

// tableDeps orders dependencies by line; dependencies sharing a line (dotted
// tables all fall back to line 1) keep their document order.
func tableDeps(table map[string]any, order, lines []string) []deps.Dependency {
	list := make([]deps.Dependency, 0, len(table))
	for _, name := range order {
		if value, ok := table[name]; ok {
			list = append(list, deps.Dependency{
				Name:    name,
				Version: specifier(value),
				Line:    findLine(lines, name),
			})
		}
	}
	slices.SortStableFunc(list, func(a, b deps.Dependency) int {
		return a.Line - b.Line
	})
	return list
}

// specifier returns a plain string value, the "version" key of an inline or
// dotted table, or "*" for anything else.
func specifier(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["version"].(string); ok {
			return s
		}
	}
	return deps.AnyVersion
}

// findLine returns the first 1-indexed line containing "<name> = ", or 1.
func findLine(lines []string, name string) int {
	needle := name + " = "
	for i, line := range lines {
		if strings.Contains(line, needle) {
			return i + 1
		}
	}
	return 1
}

type cargoFile struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
