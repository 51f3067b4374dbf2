package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for invalid input
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Width(20)

	activeLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Toggle styles
	toggleOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	legendActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSuccess)

	// Form box
	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	// Readout styles
	readoutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess).
			Padding(0, 1)

	invalidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger).
			Padding(0, 1)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
