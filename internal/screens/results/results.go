// Package results renders the frozen assessment report.
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

// ResultsScreen shows the overall score, one row per category and the
// feedback for the selected category.
type ResultsScreen struct {
	sess   *session.Session
	report *scoring.Report
	err    error
	cursor int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. sess must be in PhaseResults; otherwise the
// screen renders the error.
func New(sess *session.Session) *ResultsScreen {
	r, err := sess.Results()
	return &ResultsScreen{sess: sess, report: r, err: err}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Category"},
		{Key: "Enter", Description: "Details"},
		{Key: "R", Description: "Retake"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.report != nil && s.cursor < len(s.report.Categories)-1 {
			s.cursor++
		}
	case "enter":
		if s.report == nil {
			return s, nil
		}
		detail := newDetail(s.sess, s.report.Categories, s.cursor)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: detail}
		}
	case "r":
		s.sess.Reset()
		return s, screen.PhaseChanged
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render(s.err.Error()))
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	title := "Your Business Growth Assessment Results"
	if name := s.sess.Respondent().DisplayName(); name != "" {
		title = name + "'s Business Growth Assessment Results"
	}
	b.WriteString(theme.Title.Width(cw).Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.renderOverall()))
	b.WriteString("\n\n")

	rows := make([]string, len(s.report.Categories))
	for i, cr := range s.report.Categories {
		rows[i] = renderRow(cr, i == s.cursor, cw-6)
	}
	b.WriteString(components.Card(strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	if !layout.IsCompactHeight(height) {
		cr := s.report.Categories[s.cursor]
		body := theme.Selected.Render(cr.Name) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(cr.Feedback)
		b.WriteString(components.CardWithBorder(body, cw, theme.Accent))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *ResultsScreen) renderOverall() string {
	r := s.report
	score := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Overall %.1f/5.0", r.Overall))
	pct := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d%%", r.OverallPercentage))
	badge := components.Badge(string(r.OverallLabel), theme.LabelColor(r.OverallLabel))
	return score + "  " + pct + "  " + badge
}

// renderRow renders one category: name and score on the first line, label,
// percentage and bar on the second.
func renderRow(cr scoring.CategoryResult, selected bool, width int) string {
	marker := "  "
	nameStyle := theme.Unselected
	if selected {
		marker = "▸ "
		nameStyle = theme.Selected
	}

	name := marker + nameStyle.Render(cr.Name)
	score := lipgloss.NewStyle().Foreground(theme.LabelColor(cr.Label)).Bold(true).
		Render(fmt.Sprintf("%.1f/5.0", cr.Score))
	gap := width - lipgloss.Width(name) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	first := name + strings.Repeat(" ", gap) + score

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20).Render("  " + string(cr.Label))
	bar := components.ProgressBar{
		Percent:     cr.Percentage / 100,
		ShowPercent: true,
		Width:       width - lipgloss.Width(label),
		Color:       theme.LabelColor(cr.Label),
	}
	return first + "\n" + label + bar.View()
}
