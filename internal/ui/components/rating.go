package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/scoring"
	"github.com/abhisek/bizcheck/internal/ui/theme"
)

// RatingScale renders one Likert statement with its 1..5 scale.
// It holds no state of its own; the session owns the value.
type RatingScale struct {
	Number    int
	Statement string
	Value     int
	Focused   bool
	Width     int
}

// View renders the statement, the five scale points and the value's label.
func (r RatingScale) View() string {
	marker := "  "
	stmtStyle := theme.Unselected
	if r.Focused {
		marker = "▸ "
		stmtStyle = theme.Selected
	}

	width := r.Width - 2
	if width < 20 {
		width = 20
	}
	stmt := stmtStyle.Width(width).Render(fmt.Sprintf("%d. %s", r.Number, r.Statement))
	stmt = indent(stmt, marker)

	points := make([]string, 0, scoring.MaxScore-scoring.MinScore+1)
	for v := scoring.MinScore; v <= scoring.MaxScore; v++ {
		points = append(points, r.point(v))
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(scoring.RatingLabel(r.Value))
	scale := "    " + strings.Join(points, " ") + "   " + label

	return stmt + "\n" + scale
}

func (r RatingScale) point(v int) string {
	text := fmt.Sprintf(" %d ", v)
	switch {
	case v == r.Value && r.Focused:
		return lipgloss.NewStyle().Bold(true).Foreground(theme.BgDark).Background(theme.Primary).Render(text)
	case v == r.Value:
		return lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Background(theme.Border).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
	}
}

// indent prefixes the first line with marker and pads the rest to match.
func indent(s, marker string) string {
	lines := strings.Split(s, "\n")
	pad := strings.Repeat(" ", lipgloss.Width(marker))
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
