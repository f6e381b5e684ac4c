package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm saffron and gold over a deep night sky
var (
	Primary   = lipgloss.Color("#F59E0B") // Saffron
	Secondary = lipgloss.Color("#FBBF24") // Gold
	Accent    = lipgloss.Color("#FB923C") // Sunrise Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#FEF3C7") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Deep Umber
	BgCard    = lipgloss.Color("#292524") // Warm Slate
	Border    = lipgloss.Color("#44403C") // Stone Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Chat bubbles
var (
	BubbleUser = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Padding(0, 1)

	BubbleGuide = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	BubbleGuideSelected = lipgloss.NewStyle().
				Foreground(Text).
				Background(BgCard).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)
)

// Dashboard
var (
	StatValue = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatLabel = lipgloss.NewStyle().
			Foreground(TextDim)

	ChapterExplored = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true).
			Padding(0, 1)

	ChapterUnexplored = lipgloss.NewStyle().
				Foreground(TextDim).
				Background(BgCard).
				Padding(0, 1)
)
