package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/iburimskiy/purpletab/internal/theme"
)

var (
	accent = lipgloss.Color("#9400D3")
	faint  = lipgloss.Color("#6c7086")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	keyStyle   = lipgloss.NewStyle().Foreground(accent).Width(18)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// swatch renders a small block filled with hex, or nothing for bad input.
func swatch(hex string) string {
	if !theme.IsHex(hex) {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " "
}
