// Package screen defines what the router needs from a page of the UI.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizcheck/internal/ui/layout"
)

// Screen is one page between the header and footer. Screens hold a pointer
// to the session and call its operations; they never import each other.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws into width x height, the area left after header and footer.
	View(width, height int) string
	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PhaseChangedMsg tells the app the session moved to another phase, so the
// stack should be rebuilt around that phase's screen.
type PhaseChangedMsg struct{}

// PhaseChanged is a tea.Cmd producing PhaseChangedMsg.
func PhaseChanged() tea.Msg { return PhaseChangedMsg{} }
