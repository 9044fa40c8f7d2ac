package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/versionlens/pkg/annotation"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	stylePackage = lipgloss.NewStyle().Foreground(colorWhite).Width(28)
	styleLine    = lipgloss.NewStyle().Foreground(colorDim).Width(6).Align(lipgloss.Right)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconUpdate  = "↑"
	iconMajor   = "⇡"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Annotations
// =============================================================================

// badge renders the annotation text in the color of its style.
func badge(a annotation.Annotation) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Style.Color()))
	return style.Render(styleIcon(a.Style) + " " + a.Text)
}

func styleIcon(s annotation.Style) string {
	switch s {
	case annotation.UpToDate:
		return iconSuccess
	case annotation.MajorDiff:
		return iconMajor
	default:
		return iconUpdate
	}
}

// annotationLine renders one annotation as "  line  package  badge".
func annotationLine(a annotation.Annotation) string {
	return styleLine.Render(fmt.Sprintf("L%d", a.Line)) + "  " + stylePackage.Render(a.Package) + badge(a)
}

// writeAnnotations prints a manifest heading followed by its annotations.
func writeAnnotations(w io.Writer, path string, list []annotation.Annotation) {
	fmt.Fprintln(w, StyleTitle.Render(filepath.Base(path))+" "+StyleDim.Render(filepath.Dir(path)))
	if len(list) == 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render("no dependencies to report"))
		return
	}
	for _, a := range list {
		fmt.Fprintln(w, annotationLine(a))
	}
}

// summary counts annotations per style, e.g. "3 up to date · 1 outdated".
func summary(list []annotation.Annotation) string {
	var parts []string
	for _, s := range []annotation.Style{annotation.UpToDate, annotation.Outdated, annotation.MajorDiff} {
		if n := len(annotation.FilterByStyle(list, s)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ReplaceAll(string(s), "-", " ")))
		}
	}
	if len(parts) == 0 {
		return "no dependencies"
	}
	return strings.Join(parts, " · ")
}
