// Package python provides version lookups for PyPI packages.
//
// # Manifest Parsing
//
// [PyProject] understands both PEP 621 and Poetry layouts of pyproject.toml:
//
//	[project]
//	dependencies = ["requests>=2.28", "click"]
//
//	[project.optional-dependencies]
//	dev = ["pytest>=7.0"]
//
//	[tool.poetry.dependencies]
//	fastapi = "^0.100.0"
//
// Array entries are split at the first version operator; an entry without one
// gets the specifier "*". Optional dependencies carry their extra as a
// " [group]" suffix (">=7.0 [dev]"). When a name appears in more than one
// source the earliest source wins. The Poetry "python" entry is the
// interpreter constraint and is not reported.
//
// # Registry
//
// [Language] wires the parser to the [pypi] client, which reads info.version
// from https://pypi.org/pypi/{name}/json.
//
// [pypi]: github.com/matzehuels/versionlens/pkg/integrations/pypi
package python
