package tui

import "github.com/charmbracelet/lipgloss"

// Paleta de la página web.
var (
	colorText    = lipgloss.Color("#4A6B6B")
	colorMuted   = lipgloss.Color("#7A9B9B")
	colorTile    = lipgloss.Color("#D4EDED")
	colorBorder  = lipgloss.Color("#A8C5C5")
	colorAccent  = lipgloss.Color("#8AB5B5")
	colorErrorFg = lipgloss.Color("#842029")
	colorErrorBg = lipgloss.Color("#F8D7DA")
)

type styles struct {
	title        lipgloss.Style
	search       lipgloss.Style
	searchActive lipgloss.Style
	note         lipgloss.Style
	tile         lipgloss.Style
	tileSelected lipgloss.Style
	button       lipgloss.Style
	notice       lipgloss.Style
	modal        lipgloss.Style
	errorBanner  lipgloss.Style
	status       lipgloss.Style
	help         lipgloss.Style
}

func defaultStyles() styles {
	tile := lipgloss.NewStyle().
		Background(colorTile).
		Foreground(colorText).
		Padding(1, 3).
		Margin(0, 1, 1, 0).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTile)

	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1),
		search:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		searchActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		note:         lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		tile:         tile,
		tileSelected: tile.BorderForeground(colorAccent),
		button:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent).Padding(0, 2),
		notice:       lipgloss.NewStyle().Foreground(colorMuted).Faint(true).MarginTop(1),
		modal:        lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorAccent).Padding(1, 2),
		errorBanner:  lipgloss.NewStyle().Foreground(colorErrorFg).Background(colorErrorBg).Padding(0, 1),
		status:       lipgloss.NewStyle().Foreground(colorMuted),
		help:         lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
	}
}
