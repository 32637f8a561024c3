package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the search screen.
type Styles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Item        lipgloss.Style
	Category    lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles returns the built-in dark-terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			PaddingLeft(4),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#888888")),
	}
}
