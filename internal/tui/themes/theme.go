// Package themes defines the visual styles for the classification TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Bold       lipgloss.Style
	Selected   lipgloss.Style
	Enabled    lipgloss.Style
	Disabled   lipgloss.Style
	Notice     lipgloss.Style
	ErrorText  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Pane       lipgloss.Style
	ActivePane lipgloss.Style
}

// New derives the component styles from a palette.
func New(primary, muted, border, success, warning, errColor, foreground lipgloss.Color) Theme {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Enabled: lipgloss.NewStyle().
			Foreground(success),
		Disabled: lipgloss.NewStyle().
			Foreground(muted).
			Strikethrough(true),
		Notice: lipgloss.NewStyle().
			Foreground(warning),
		ErrorText: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(primary),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
		Pane:       pane,
		ActivePane: pane.BorderForeground(primary),
	}
}

// Default is the default theme.
var Default = New(
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#f59e0b"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#fafafa"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#cdd6f4"),
)

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
