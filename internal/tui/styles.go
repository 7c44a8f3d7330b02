package tui

import "github.com/charmbracelet/lipgloss"

// Styles used by the renderer
type Styles struct {
	Header    lipgloss.Style
	Step      lipgloss.Style
	Title     lipgloss.Style
	Current   lipgloss.Style
	Other     lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Animating lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the player's color scheme
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Step:      lipgloss.NewStyle().Bold(true),
		Title:     lipgloss.NewStyle().Italic(true).PaddingLeft(2),
		Current:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		Other:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Playing:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		Animating: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
