package questions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/ui/components"
	"github.com/abhisek/bizcheck/internal/ui/layout"
	"github.com/abhisek/bizcheck/internal/ui/theme"
)

func (s *QuestionsScreen) View(width, height int) string {
	cat, err := s.sess.CurrentCategory()
	if err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No category in progress."))
	}

	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height)
	count := s.sess.Catalog().Count()
	current := s.sess.CurrentCategoryIndex()

	var b strings.Builder

	b.WriteString(s.renderTabs(cw))
	b.WriteString("\n\n")

	step := fmt.Sprintf("Category %d of %d", current+1, count)
	bar := components.NewProgressBar(step, s.sess.Progress(), true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(cat.Name))
	b.WriteString("\n")
	if !compact && cat.Description != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(cat.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	answers := s.sess.Answers()[cat.ID]
	blocks := make([]string, len(cat.Questions))
	for i, q := range cat.Questions {
		blocks[i] = components.RatingScale{
			Number:    i + 1,
			Statement: q,
			Value:     answers[i],
			Focused:   i == s.cursor,
			Width:     cw,
		}.View()
	}

	used := lipgloss.Height(b.String()) + 2
	b.WriteString(visibleBlocks(blocks, s.cursor, height-used, compact))

	b.WriteString("\n")
	switch {
	case s.errMsg != "":
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	case s.jumpPending:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Go to category (1-%d)...", current+1)))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderTabs lists every category; ones past the current step are dimmed
// because they cannot be jumped to yet.
func (s *QuestionsScreen) renderTabs(cw int) string {
	current := s.sess.CurrentCategoryIndex()
	cats := s.sess.Catalog().All()

	parts := make([]string, len(cats))
	for i, c := range cats {
		label := fmt.Sprintf("%d %s", i+1, c.Name)
		switch {
		case i == current:
			parts[i] = theme.Selected.Render(label)
		case i < current:
			parts[i] = theme.Unselected.Render(label)
		default:
			parts[i] = theme.Disabled.Render(label)
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, "  ·  "))
}

// visibleBlocks joins statement blocks, scrolling so the cursor stays in view
// when they do not all fit in avail lines.
func visibleBlocks(blocks []string, cursor, avail int, compact bool) string {
	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	all := strings.Join(blocks, sep)
	if avail <= 0 || lipgloss.Height(all) <= avail {
		return all
	}

	start, end := cursor, cursor+1
	fits := func(from, to int) bool {
		return lipgloss.Height(strings.Join(blocks[from:to], sep)) <= avail
	}
	for {
		grew := false
		if end < len(blocks) && fits(start, end+1) {
			end++
			grew = true
		}
		if start > 0 && fits(start-1, end) {
			start--
			grew = true
		}
		if !grew {
			break
		}
	}
	return strings.Join(blocks[start:end], sep)
}
