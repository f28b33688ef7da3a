// Package tui provides the interactive slot machine terminal UI.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - pronunciation, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - the landed word
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, decoys
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - copied
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Reel styles
var (
	ReelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	ReelItemStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ReelCenterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Margin(1, 0)
)

// Definition panel styles
var (
	WordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	PronunciationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cccccc"))

	DefinitionStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ExampleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2).
			Margin(1, 0)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// ContentStyle pads the whole screen.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
