package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	gridFg    = lipgloss.Color("#4B5563")
	markedBg  = lipgloss.Color("#4E9A06")
	markedFg  = lipgloss.Color("#D7FF87")
	markerFg  = lipgloss.Color("#FF4040")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	// map inks
	gridStyle   = lipgloss.NewStyle().Foreground(gridFg)
	markedStyle = lipgloss.NewStyle().Foreground(markedFg).Background(markedBg)
	markerStyle = lipgloss.NewStyle().Foreground(markerFg).Bold(true)
)
