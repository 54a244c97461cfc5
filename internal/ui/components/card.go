package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every card on a screen so
// stacked cards line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return CardWithBorder(content, cw, theme.Border)
}

// CardWithBorder is Card with a custom border color.
func CardWithBorder(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Badge renders a short label on a colored background.
func Badge(label string, bg color.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgDark).
		Background(bg).
		Padding(0, 1).
		Render(label)
}
