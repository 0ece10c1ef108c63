package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#3F3F46")
	ColorText      = lipgloss.Color("#E4E4E7")
	ColorSelected  = lipgloss.Color("#F56565")
	ColorHighlight = lipgloss.Color("#73F59F")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F1F23")).
			Foreground(ColorText).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	MapPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	ScanningStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F56565")).
			Bold(true)
)

// depthStyles color map boxes by nesting depth; the palette repeats.
var depthStyles = []lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("#1E3A5F")).Foreground(lipgloss.Color("#7DD3FC")),
	lipgloss.NewStyle().Background(lipgloss.Color("#14532D")).Foreground(lipgloss.Color("#86EFAC")),
	lipgloss.NewStyle().Background(lipgloss.Color("#7F1D1D")).Foreground(lipgloss.Color("#FCA5A5")),
	lipgloss.NewStyle().Background(lipgloss.Color("#3B2F63")).Foreground(lipgloss.Color("#C4B5FD")),
	lipgloss.NewStyle().Background(lipgloss.Color("#2D2D2D")).Foreground(lipgloss.Color("#9CA3AF")),
}

// DepthStyle returns the box style for a nesting depth.
func DepthStyle(depth int) lipgloss.Style {
	return depthStyles[depth%len(depthStyles)]
}

var (
	SelectedBoxStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	HighlightedBoxStyle = lipgloss.NewStyle().
				Background(ColorHighlight).
				Foreground(lipgloss.Color("#000000"))
)

// FormatSize formats a byte count for humans.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
