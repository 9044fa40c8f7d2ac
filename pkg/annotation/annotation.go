package annotation

import (
	"github.com/matzehuels/versionlens/pkg/version"
)

// Style selects how an annotation is rendered.
type Style string

const (
	UpToDate  Style = "up-to-date"
	Outdated  Style = "outdated"
	MajorDiff Style = "major-diff"
)

// Color returns the hex color used to render the style.
func (s Style) Color() string {
	switch s {
	case UpToDate:
		return "#4ade80"
	case MajorDiff:
		return "#f87171"
	default:
		return "#facc15"
	}
}

// Annotation is one inline hint attached to a manifest line.
type Annotation struct {
	Text    string `json:"text"`
	Style   Style  `json:"style"`
	Line    int    `json:"line"`
	Package string `json:"package"`
}

// FromComparison builds the annotation for a compared dependency.
//
// Outdated results with a major gap get [MajorDiff]; any other outdated
// result, and every comparison error, gets [Outdated] so that a bad latest
// version stays visible instead of disappearing.
func FromComparison(pkg string, line int, cmp version.Comparison) Annotation {
	return Annotation{
		Text:    cmp.Text(),
		Style:   styleFor(cmp),
		Line:    line,
		Package: pkg,
	}
}

func styleFor(cmp version.Comparison) Style {
	switch {
	case cmp.Status == version.UpToDate:
		return UpToDate
	case cmp.Status == version.Outdated && cmp.Diff == version.Major:
		return MajorDiff
	default:
		return Outdated
	}
}

// FilterByStyle returns the annotations with the given style, in order.
func FilterByStyle(list []Annotation, style Style) []Annotation {
	var out []Annotation
	for _, a := range list {
		if a.Style == style {
			out = append(out, a)
		}
	}
	return out
}
