// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is used for titles (container blue).
	PrimaryColor = lipgloss.Color("#3B82F6")
	// EnabledColor marks transport modes that are switched on.
	EnabledColor = lipgloss.Color("#4ECDC4") // Teal
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor marks modes the selected cargo may not use.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// EnabledStyle renders an enabled transport mode and success lines.
	EnabledStyle = lipgloss.NewStyle().
			Foreground(EnabledColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// UnavailableStyle renders transport modes forbidden for the cargo.
	UnavailableStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	CargoIcon   = "📦"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return EnabledStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a title with the cargo icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CargoIcon + " " + title)
}
