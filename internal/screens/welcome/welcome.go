package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/screen"
	"github.com/abhisek/bizcheck/internal/session"
	"github.com/abhisek/bizcheck/internal/ui/components"
	"github.com/abhisek/bizcheck/internal/ui/layout"
	"github.com/abhisek/bizcheck/internal/ui/theme"
)

// WelcomeScreen introduces the assessment and starts the session.
type WelcomeScreen struct {
	sess *session.Session
	menu components.Menu
	err  error
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen for sess, which must be in PhaseWelcome.
func New(sess *session.Session) *WelcomeScreen {
	w := &WelcomeScreen{sess: sess}
	w.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Your Assessment", Hint: "Your answers stay on this machine", Action: w.start},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Business Growth Assessment"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) start() tea.Cmd {
	if err := w.sess.Start(); err != nil {
		w.err = err
		return nil
	}
	return screen.PhaseChanged
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cats := w.sess.Catalog().All()
	questions := 0
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		questions += c.QuestionCount()
		names = append(names, "• "+c.Name)
	}

	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Discover your business's strengths and unlock new growth opportunities"),
		"",
		theme.Subtitle.Render(fmt.Sprintf(
			"%d statements across %d areas. Rate each from 1 (Strongly Disagree) to 5 (Strongly Agree).",
			questions, len(cats))),
	}

	if !layout.IsCompactHeight(height) {
		areas := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(names, "\n"))
		sections = append(sections, "", areas)
	}

	sections = append(sections, "", w.menu.View())

	if w.err != nil {
		sections = append(sections, theme.ErrorText.Render(w.err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
