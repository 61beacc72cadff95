package main

import "github.com/charmbracelet/lipgloss"

const (
	headerTextFGColor = "#e0e0e0"
	headerDimFGColor  = "#8a8a8a"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	headerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headerTextFGColor))
	headerDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(headerDimFGColor))

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	overlayBadge = lipgloss.NewStyle().
			Background(lipgloss.Color("#5f5fd7")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)
)
