// Package cli provides styled terminal output and shared formatting
// helpers for the command layer and the TUI.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (teal).
	PrimaryColor = lipgloss.Color("#39D2C0")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#10B981") // Emerald
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#EF4444") // Red
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#EF4444")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle draws a rounded border around summary cards.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 2)

	// SelectedStyle highlights the active list row in the TUI.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Success formats a success message with a checkmark.
func Success(msg string) string {
	return IncomeStyle.Render("✓ " + msg)
}

// Error formats an error message with an X mark.
func Error(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// Warning formats a warning message.
func Warning(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}
