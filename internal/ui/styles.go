// Package ui holds the lipgloss styles for CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent over grays.
const (
	ColorLime     = "154" // labels, headers
	ColorWhite    = "255" // important text
	ColorGray     = "245" // details, types
	ColorDarkGray = "238" // sort keys, separators
	ColorRed      = "196" // errors
	ColorYellow   = "220" // deprecation marker
)

// Styles holds the styles used when printing completion items.
type Styles struct {
	Header     lipgloss.Style
	SortKey    lipgloss.Style
	Label      lipgloss.Style
	Kind       lipgloss.Style
	Detail     lipgloss.Style
	Doc        lipgloss.Style
	Deprecated lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the styled components for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		SortKey:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Kind:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Detail:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Doc:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)).Italic(true),
		Deprecated: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)).Strikethrough(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}
