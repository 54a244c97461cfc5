// Package identity renders the respondent form shown before the questions.
package identity

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/errs"
	"github.com/abhisek/bizcheck/internal/screen"
	"github.com/abhisek/bizcheck/internal/session"
	"github.com/abhisek/bizcheck/internal/ui/components"
	"github.com/abhisek/bizcheck/internal/ui/layout"
	"github.com/abhisek/bizcheck/internal/ui/theme"
)

const (
	firstNameInput = iota
	lastNameInput
	emailInput
	submitButton

	focusCount
)

const nameLimit = 64

// IdentityScreen collects first name, last name and email.
type IdentityScreen struct {
	sess   *session.Session
	inputs [submitButton]components.TextInput
	submit components.Button
	focus  int
	err    error
}

var _ screen.Screen = (*IdentityScreen)(nil)

// New creates the identity form for sess, which must be in PhaseIdentity.
func New(sess *session.Session) *IdentityScreen {
	s := &IdentityScreen{sess: sess}
	s.inputs[firstNameInput] = components.NewTextInput("First Name", "Jane", true, nameLimit)
	s.inputs[lastNameInput] = components.NewTextInput("Last Name", "Doe", false, nameLimit)
	s.inputs[emailInput] = components.NewTextInput("Email", "jane@example.com", true, 254)
	s.submit = components.NewButton("Begin Assessment", false, s.submitForm)
	return s
}

func (s *IdentityScreen) Title() string {
	return "Your Information"
}

func (s *IdentityScreen) Init() tea.Cmd {
	return s.setFocus(firstNameInput)
}

func (s *IdentityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "esc":
			s.sess.Reset()
			return s, screen.PhaseChanged
		case "enter":
			if s.focus == submitButton {
				var cmd tea.Cmd
				s.submit, cmd = s.submit.Update(msg)
				return s, cmd
			}
			return s, s.setFocus(s.focus + 1)
		}
	}

	if s.focus < submitButton {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *IdentityScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.submit.Active = i == submitButton
	var cmd tea.Cmd
	for j := range s.inputs {
		if j == i {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

func (s *IdentityScreen) submitForm() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Err = ""
	}
	s.err = nil

	err := s.sess.SubmitIdentity(
		s.inputs[firstNameInput].Value(),
		s.inputs[lastNameInput].Value(),
		s.inputs[emailInput].Value(),
	)
	if err == nil {
		return screen.PhaseChanged
	}

	fields := errs.FieldErrors(err)
	if fields == nil {
		s.err = err
		return nil
	}
	s.inputs[firstNameInput].Err = fields[session.FieldFirstName]
	s.inputs[lastNameInput].Err = fields[session.FieldLastName]
	s.inputs[emailInput].Err = fields[session.FieldEmail]

	// Send the cursor back to the first field that needs fixing.
	for i := range s.inputs {
		if s.inputs[i].Err != "" {
			return s.setFocus(i)
		}
	}
	return nil
}

func (s *IdentityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Cancel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IdentityScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Render("Your Information"),
		theme.Subtitle.Render("Please provide your information to personalize your assessment results."),
		"",
	}
	for i := range s.inputs {
		sections = append(sections, s.inputs[i].View(), "")
	}
	sections = append(sections, s.submit.View())
	if s.err != nil {
		sections = append(sections, "", theme.ErrorText.Render(s.err.Error()))
	}

	card := components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
