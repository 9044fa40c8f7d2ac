package python

import (
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// operators mark the end of the name in a PEP 508 requirement string.
const operators = "><=~^!"

// PyProject parses pyproject.toml files. Dependencies are merged from, in
// order: project.dependencies (table or PEP 621 array),
// project.optional-dependencies, tool.poetry.dependencies and a root-level
// dependencies table. The first source to declare a name wins.
type PyProject struct{}

func (p *PyProject) Type() string              { return "pyproject.toml" }
func (p *PyProject) Supports(name string) bool { return name == "pyproject.toml" }

func (p *PyProject) Parse(content string) ([]deps.Dependency, error) {
	var doc pyprojectFile
	md, err := toml.Decode(content, &doc)
	if err != nil {
		return nil, deps.ParseError(p.Type(), err)
	}

	c := collector{lines: strings.Split(content, "\n"), seen: make(map[string]bool)}

	switch v := doc.Project.Dependencies.(type) {
	case map[string]any:
		c.addTable(v)
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				name, spec := splitRequirement(s)
				c.add(name, spec)
			}
		}
	}

	for _, group := range optionalGroups(md, doc.Project.OptionalDependencies) {
		entries, _ := doc.Project.OptionalDependencies[group].([]any)
		for _, entry := range entries {
			if s, ok := entry.(string); ok {
				name, spec := splitRequirement(s)
				c.add(name, spec+" ["+group+"]")
			}
		}
	}

	poetry := doc.Tool.Poetry.Dependencies
	delete(poetry, "python")
	c.addTable(poetry)
	c.addTable(doc.Dependencies)

	return c.out, nil
}

type collector struct {
	lines []string
	seen  map[string]bool
	out   []deps.Dependency
}

func (c *collector) add(name, spec string) {
	if name == "" || c.seen[name] {
		return
	}
	c.seen[name] = true
	c.out = append(c.out, deps.Dependency{Name: name, Version: spec, Line: c.findLine(name)})
}

// addTable adds a name/value table in source order.
func (c *collector) addTable(table map[string]any) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if la, lb := c.findLine(a), c.findLine(b); la != lb {
			return la - lb
		}
		return strings.Compare(a, b)
	})
	for _, name := range names {
		c.add(name, tableSpecifier(table[name]))
	}
}

// findLine returns the 1-indexed line of the first occurrence of name.
func (c *collector) findLine(name string) int {
	for i, line := range c.lines {
		if strings.Contains(line, name) {
			return i + 1
		}
	}
	return deps.UnknownLine
}

func tableSpecifier(v any) string {
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

// splitRequirement splits "requests[socks]>=2.28; python_version>'3.8'" into
// the bare name and the trimmed specifier. A requirement without an operator
// has specifier "*".
func splitRequirement(s string) (name, spec string) {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, operators)
	if i < 0 {
		return stripExtras(s), deps.AnyVersion
	}
	return stripExtras(s[:i]), strings.TrimSpace(s[i:])
}

func stripExtras(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// optionalGroups returns the extras of project.optional-dependencies in
// document order.
func optionalGroups(md toml.MetaData, groups map[string]any) []string {
	var order []string
	for _, key := range md.Keys() {
		if len(key) == 3 && key[0] == "project" && key[1] == "optional-dependencies" {
			if _, ok := groups[key[2]]; ok && !slices.Contains(order, key[2]) {
				order = append(order, key[2])
			}
		}
	}
	return order
}

type pyprojectFile struct {
	Project struct {
		Dependencies         any            `toml:"dependencies"`
		OptionalDependencies map[string]any `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
	Dependencies map[string]any `toml:"dependencies"`
}
