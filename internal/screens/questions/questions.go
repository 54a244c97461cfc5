// Package questions renders one category of statements at a time and drives
// the session's rating and navigation operations.
package questions

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizcheck/internal/errs"
	"github.com/abhisek/bizcheck/internal/scoring"
	"github.com/abhisek/bizcheck/internal/screen"
	"github.com/abhisek/bizcheck/internal/session"
	"github.com/abhisek/bizcheck/internal/ui/layout"
)

// QuestionsScreen implements screen.Screen for PhaseQuestioning.
type QuestionsScreen struct {
	sess *session.Session

	// cursor is the selected statement within the current category.
	cursor int
	// jumpPending is set after "g" while waiting for a category number.
	jumpPending bool
	errMsg      string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates the questions screen for sess, which must be in PhaseQuestioning.
func New(sess *session.Session) *QuestionsScreen {
	return &QuestionsScreen{sess: sess}
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionsScreen) Title() string {
	c, err := s.sess.CurrentCategory()
	if err != nil {
		return "Assessment"
	}
	return c.Name
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	if s.jumpPending {
		return []layout.KeyHint{
			{Key: "1-9", Description: "Go to category"},
			{Key: "any key", Description: "Cancel"},
		}
	}
	next := "Next"
	if s.sess.IsLastCategory() {
		next = "View results"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Statement"},
		{Key: "1-5", Description: "Rate"},
		{Key: "→/n", Description: next},
		{Key: "←/p", Description: "Back"},
		{Key: "g", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.jumpPending {
		s.jumpPending = false
		if d, ok := digit(key); ok {
			if s.apply(s.sess.JumpTo(d-1), "No such category") {
				s.cursor = 0
			}
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.questionCount()-1 {
			s.cursor++
		}
	case "right", "n", "enter":
		return s, s.advance()
	case "left", "p", "backspace":
		if s.apply(s.sess.Retreat(), "Already at the first category") {
			s.cursor = 0
		}
	case "g":
		s.jumpPending = true
		s.errMsg = ""
	default:
		if v, ok := digit(key); ok && scoring.ValidScore(v) {
			s.rate(v)
		}
	}
	return s, nil
}

func (s *QuestionsScreen) rate(v int) {
	c, err := s.sess.CurrentCategory()
	if err != nil {
		s.apply(err, "")
		return
	}
	s.apply(s.sess.SetAnswer(c.ID, s.cursor, v), "")
}

func (s *QuestionsScreen) advance() tea.Cmd {
	if !s.apply(s.sess.Advance(), "") {
		return nil
	}
	s.cursor = 0
	if s.sess.Phase() != session.PhaseQuestioning {
		return screen.PhaseChanged
	}
	return nil
}

// apply records err for display and reports whether the operation succeeded.
// outOfRange replaces the message for ErrOutOfRange.
func (s *QuestionsScreen) apply(err error, outOfRange string) bool {
	if err == nil {
		s.errMsg = ""
		return true
	}
	switch {
	case errors.Is(err, errs.ErrOutOfRange) && outOfRange != "":
		s.errMsg = outOfRange
	case errors.Is(err, errs.ErrInvalidState):
		s.errMsg = "That category has not been reached yet"
	default:
		s.errMsg = err.Error()
	}
	return false
}

func (s *QuestionsScreen) questionCount() int {
	c, err := s.sess.CurrentCategory()
	if err != nil {
		return 0
	}
	return c.QuestionCount()
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}
