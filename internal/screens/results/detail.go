package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/router"
	"github.com/abhisek/bizcheck/internal/scoring"
	"github.com/abhisek/bizcheck/internal/screen"
	"github.com/abhisek/bizcheck/internal/session"
	"github.com/abhisek/bizcheck/internal/ui/components"
	"github.com/abhisek/bizcheck/internal/ui/layout"
	"github.com/abhisek/bizcheck/internal/ui/theme"
)

// detailScreen shows one category's feedback and how each statement was
// rated. ←/→ swap it in place for the neighbouring category.
type detailScreen struct {
	sess       *session.Session
	results    []scoring.CategoryResult
	index      int
	result     scoring.CategoryResult
	statements []string
	answers    []int
}

var _ screen.Screen = (*detailScreen)(nil)

func newDetail(sess *session.Session, results []scoring.CategoryResult, index int) *detailScreen {
	cr := results[index]
	d := &detailScreen{sess: sess, results: results, index: index, result: cr}
	if c, err := sess.Catalog().ByID(cr.CategoryID); err == nil {
		d.statements = c.Questions
	}
	d.answers = sess.Answers()[cr.CategoryID]
	return d
}

func (d *detailScreen) Init() tea.Cmd { return nil }
func (d *detailScreen) Title() string { return d.result.Name }

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	next := d.index
	switch kmsg.String() {
	case "left", "h":
		next--
	case "right", "l":
		next++
	default:
		return d, nil
	}
	if next < 0 || next >= len(d.results) {
		return d, nil
	}

	neighbour := newDetail(d.sess, d.results, next)
	return d, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: neighbour}
	}
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Other category"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *detailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	cr := d.result

	var b strings.Builder
	b.WriteString(theme.Selected.Render(cr.Name))
	b.WriteString("  ")
	b.WriteString(components.Badge(string(cr.Label), theme.LabelColor(cr.Label)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %.1f/5.0 · %.0f%% · %s band", cr.Score, cr.Percentage, cr.Band)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(cr.Feedback))

	if len(d.statements) > 0 && !layout.IsCompactHeight(height) {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your ratings"))
		for i, q := range d.statements {
			v := 0
			if i < len(d.answers) {
				v = d.answers[i]
			}
			line := fmt.Sprintf("%d  %s", v, q)
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(line))
		}
	}

	card := components.CardWithBorder(b.String(), cw, theme.LabelColor(cr.Label))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
