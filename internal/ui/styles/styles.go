// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across prompts, panels and log output. Colors
// follow the active [Theme]; call [Init] after loading config.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = DefaultTheme.Accent

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = DefaultTheme.Success

	// Error is used for error messages (red)
	Error color.Color = DefaultTheme.Error

	// Muted is used for disabled/inactive text (gray)
	Muted color.Color = DefaultTheme.Muted

	// Info is used for informational text (gray)
	Info color.Color = DefaultTheme.Info

	// Warning is used for warnings and cancellations (orange)
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// CommandStyle renders the "$" prefix of echoed commands (bold primary)
	CommandStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// TitleStyle renders panel titles
	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// Border styles
var (
	// PanelBorder wraps headers and the plan summary
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)
