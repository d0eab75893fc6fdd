package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles for everything drawn around the arena.
type Theme struct {
	// Arena frame
	ArenaBorder lipgloss.Style

	// Status line
	Score    lipgloss.Style
	GameOver lipgloss.Style

	// Buttons
	Button       lipgloss.Style
	ButtonActive lipgloss.Style // Highlighted when it is the useful action

	// Hint below the buttons
	Hint lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)

	return Theme{
		ArenaBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),

		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		GameOver: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Button:       button,
		ButtonActive: button.BorderForeground(lipgloss.Color("226")).Foreground(lipgloss.Color("226")),

		Hint: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme without accent colors.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.GameOver = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.ButtonActive = theme.Button.Bold(true)
	return theme
}
