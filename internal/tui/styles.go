package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorBorder    = lipgloss.Color("238") // dark gray
	colorWarn      = lipgloss.Color("9")   // bright red

	// Input area
	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Header
	styleQuote = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleTotal = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Timer
	styleClock = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	styleClockRunning = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Padding(0, 1)

	styleProgress = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleStreak = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	styleCelebrate = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// Subject list
	styleListSelected = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	styleListNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleListActive = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Panels
	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	styleActiveBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleStatusWarn = lipgloss.NewStyle().
			Foreground(colorWarn).
			Padding(0, 1)

	// Panel titles
	styleTitle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)
)
