// Package app holds the terminal styles shared by the prompts and the
// notifier.
package app

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	InfoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3600"))
)
