package javascript

import (
	"bytes"
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/versionlens/pkg/deps"
)

// sections are scanned in this order; each contributes its own entries.
var sections = []string{"dependencies", "devDependencies", "peerDependencies"}

var keyPattern = regexp.MustCompile(`"([^"]+)"\s*:`)

// PackageJSON parses package.json files. It extracts dependencies,
// devDependencies, and peerDependencies.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return name == "package.json" }

func (p *PackageJSON) Parse(content string) ([]deps.Dependency, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, deps.ParseError(p.Type(), err)
	}

	var out []deps.Dependency
	for _, section := range sections {
		raw, ok := doc[section]
		if !ok {
			continue
		}
		entries, ok := orderedEntries(raw)
		if !ok {
			// Sections that are not objects are ignored.
			continue
		}
		lines := sectionLines(content, section)
		out = append(out, sectionDeps(entries, lines)...)
	}
	return out, nil
}

type entry struct {
	name  string
	value any
}

// orderedEntries reads the members of a JSON object in document order. A
// repeated key keeps its first position and its last value.
func orderedEntries(raw json.RawMessage) ([]entry, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}
	var entries []entry
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		name, _ := tok.(string)
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if i, seen := index[name]; seen {
			entries[i].value = value
			continue
		}
		index[name] = len(entries)
		entries = append(entries, entry{name: name, value: value})
	}
	return entries, true
}

// sectionDeps orders entries by line; entries sharing a line keep their
// document order.
func sectionDeps(entries []entry, lines map[string]int) []deps.Dependency {
	list := make([]deps.Dependency, 0, len(entries))
	for _, e := range entries {
		list = append(list, deps.Dependency{
			Name:    e.name,
			Version: specifier(e.value),
			Line:    lines[e.name],
		})
	}
	slices.SortStableFunc(list, func(a, b deps.Dependency) int {
		return a.Line - b.Line
	})
	return list
}

// specifier reads a string value or the "version" field of an object value.
func specifier(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["version"].(string); ok {
			return s
		}
	}
	return ""
}

// sectionLines locates the 1-indexed line of every direct key inside the
// object that follows "section":. JSON decoding drops positions, so this pass
// tracks brace depth over the raw text. A key that appears in an unrelated
// earlier object with the same section name can be mis-located.
func sectionLines(content, section string) map[string]int {
	header := regexp.MustCompile(`"` + regexp.QuoteMeta(section) + `"\s*:`)
	lines := make(map[string]int)

	inSection := false
	depth := 0
	for i, line := range strings.Split(content, "\n") {
		if !inSection {
			loc := header.FindStringIndex(line)
			if loc == nil {
				continue
			}
			inSection = true
			rest := line[loc[1]:]
			for _, m := range keyPattern.FindAllStringSubmatch(rest, -1) {
				if _, seen := lines[m[1]]; !seen {
					lines[m[1]] = i + 1
				}
			}
			depth = strings.Count(rest, "{") - strings.Count(rest, "}")
			if depth <= 0 && strings.Contains(rest, "}") {
				inSection = false
			}
			continue
		}

		if depth == 1 {
			if m := keyPattern.FindStringSubmatch(line); m != nil {
				if _, seen := lines[m[1]]; !seen {
					lines[m[1]] = i + 1
				}
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 {
			inSection = false
		}
	}
	return lines
}
