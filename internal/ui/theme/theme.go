package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/scoring"
)

// Color palette, calm business teal with warm accents
var (
	Primary   = lipgloss.Color("#0D9488") // Teal
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Score label colors, weakest to strongest.
var (
	LabelLow       = lipgloss.Color("#F43F5E") // Rose
	LabelMid       = lipgloss.Color("#F59E0B") // Amber
	LabelStrong    = lipgloss.Color("#10B981") // Emerald
	LabelExcellent = lipgloss.Color("#14B8A6") // Teal
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

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// LabelColor returns the display color for a score label.
func LabelColor(l scoring.Label) color.Color {
	switch l {
	case scoring.LabelNeedsImprovement:
		return LabelLow
	case scoring.LabelDeveloping:
		return LabelMid
	case scoring.LabelStrong:
		return LabelStrong
	case scoring.LabelExcellent:
		return LabelExcellent
	default:
		return TextDim
	}
}
