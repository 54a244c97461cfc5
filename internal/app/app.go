// Package app wires the assessment session to the Bubble Tea program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/bizcheck/internal/router"
	"github.com/abhisek/bizcheck/internal/screen"
	"github.com/abhisek/bizcheck/internal/screens/identity"
	"github.com/abhisek/bizcheck/internal/screens/questions"
	"github.com/abhisek/bizcheck/internal/screens/results"
	"github.com/abhisek/bizcheck/internal/screens/welcome"
	"github.com/abhisek/bizcheck/internal/session"
	"github.com/abhisek/bizcheck/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Session *session.Session
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	logger *zap.Logger
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel showing the screen for the session's phase.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		sess:   opts.Session,
		logger: logger,
		router: router.New(screenFor(opts.Session)),
	}
}

// screenFor returns the screen that presents sess in its current phase.
func screenFor(sess *session.Session) screen.Screen {
	switch sess.Phase() {
	case session.PhaseIdentity:
		return identity.New(sess)
	case session.PhaseQuestioning:
		return questions.New(sess)
	case session.PhaseResults:
		return results.New(sess)
	default:
		return welcome.New(sess)
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.PhaseChangedMsg:
		m.logger.Debug("screen for phase", zap.Stringer("phase", m.sess.Phase()))
		return m, m.router.Reset(screenFor(m.sess))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// headerStatus is the respondent's name plus progress while questioning.
func (m AppModel) headerStatus() string {
	name := m.sess.Respondent().DisplayName()
	if m.sess.Phase() != session.PhaseQuestioning {
		return name
	}
	return fmt.Sprintf("%s  %d%%", name, int(m.sess.Progress()*100+0.5))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("interactive session started", zap.String("session_id", opts.Session.ID()))

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
