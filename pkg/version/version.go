package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/versionlens/pkg/errors"
)

// Status is the verdict of a comparison.
type Status int

const (
	UpToDate Status = iota // latest satisfies the specifier
	Outdated               // latest falls outside the specifier
	Invalid                // latest is not a strict semantic version
)

func (s Status) String() string {
	switch s {
	case UpToDate:
		return "up-to-date"
	case Outdated:
		return "outdated"
	default:
		return "error"
	}
}

// Diff classifies the size of the gap between a specifier and latest.
type Diff int

const (
	Patch Diff = iota
	Minor
	Major
)

// String returns the lowercase label ("major", "minor", "patch").
func (d Diff) String() string {
	switch d {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// Comparison is the result of [Compare].
//
// Diff is only meaningful when Status is Outdated; Err is only set when
// Status is Invalid.
type Comparison struct {
	Status  Status
	Current string // Specifier as written in the manifest
	Latest  string // Latest version as reported by the registry
	Diff    Diff
	Err     error
}

// Text renders the comparison for display next to the dependency:
// "^1.2.0 → 1.3.0", "^1.2.0 → 2.0.0 (major)" or "Error: ...".
func (c Comparison) Text() string {
	switch c.Status {
	case UpToDate:
		return fmt.Sprintf("%s → %s", c.Current, c.Latest)
	case Outdated:
		return fmt.Sprintf("%s → %s (%s)", c.Current, c.Latest, c.Diff)
	default:
		return "Error: " + errors.UserMessage(c.Err)
	}
}

// Compare classifies latest against the current specifier.
//
// The up-to-date verdict comes from [ParseRequirement]; the diff label is
// computed separately from the specifier's base version so an outdated result
// always carries a precise label.
func Compare(current, latest string) Comparison {
	lv, err := semver.StrictNewVersion(latest)
	if err != nil {
		return Comparison{
			Status:  Invalid,
			Current: current,
			Latest:  latest,
			Err:     errors.Wrap(errors.ErrCodeInvalidVersion, err, "latest version %q", latest),
		}
	}

	if ParseRequirement(current).Matches(lv) {
		return Comparison{Status: UpToDate, Current: current, Latest: latest}
	}
	return Comparison{
		Status:  Outdated,
		Current: current,
		Latest:  latest,
		Diff:    diff(current, lv),
	}
}

// diff compares the specifier's base version with latest component-wise.
// An unreadable base version is reported as a patch difference.
func diff(spec string, latest *semver.Version) Diff {
	base, ok := BaseVersion(spec)
	switch {
	case !ok:
		return Patch
	case base.Major() != latest.Major():
		return Major
	case base.Minor() != latest.Minor():
		return Minor
	default:
		return Patch
	}
}

// BaseVersion strips any leading ^ ~ > < = from spec and parses the rest as a
// strict semantic version.
func BaseVersion(spec string) (*semver.Version, bool) {
	v, err := semver.StrictNewVersion(strings.TrimLeft(strings.TrimSpace(spec), "^~><= "))
	if err != nil {
		return nil, false
	}
	return v, true
}

// Requirement is the matching predicate derived from a specifier.
// The zero value is the wildcard and matches every version.
type Requirement struct {
	c *semver.Constraints
}

// Matches reports whether v satisfies the requirement.
func (r Requirement) Matches(v *semver.Version) bool {
	if r.c == nil {
		return true
	}
	return r.c.Check(v)
}

// IsWildcard reports whether the requirement admits every version.
func (r Requirement) IsWildcard() bool { return r.c == nil }

func (r Requirement) String() string {
	if r.c == nil {
		return "*"
	}
	return r.c.String()
}

// ParseRequirement translates a manifest specifier into a [Requirement]:
//
//	^X.Y.Z    >=X.Y.Z, <(X+1).0.0
//	~X.Y.Z    >=X.Y.Z, <X.(Y+1).0
//	>..., <..., =...  parsed as a comparator range
//	X.Y.Z     =X.Y.Z
//
// Anything else, and any specifier that fails to parse, is the wildcard.
func ParseRequirement(spec string) Requirement {
	spec = strings.TrimSpace(spec)

	if rest, ok := strings.CutPrefix(spec, "^"); ok {
		if v, err := semver.StrictNewVersion(strings.TrimSpace(rest)); err == nil {
			return constraint(fmt.Sprintf(">=%d.%d.%d, <%d.0.0", v.Major(), v.Minor(), v.Patch(), v.Major()+1))
		}
	}

	if rest, ok := strings.CutPrefix(spec, "~"); ok {
		if v, err := semver.StrictNewVersion(strings.TrimSpace(rest)); err == nil {
			return constraint(fmt.Sprintf(">=%d.%d.%d, <%d.%d.0", v.Major(), v.Minor(), v.Patch(), v.Major(), v.Minor()+1))
		}
	}

	if strings.HasPrefix(spec, ">") || strings.HasPrefix(spec, "<") || strings.HasPrefix(spec, "=") {
		if c, err := semver.NewConstraint(spec); err == nil {
			return Requirement{c: c}
		}
	}

	if v, err := semver.StrictNewVersion(spec); err == nil {
		return constraint(fmt.Sprintf("=%d.%d.%d", v.Major(), v.Minor(), v.Patch()))
	}

	return Requirement{}
}

func constraint(s string) Requirement {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return Requirement{}
	}
	return Requirement{c: c}
}
