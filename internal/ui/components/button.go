package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizcheck/internal/ui/theme"
)

// Button is a form action. It fires OnPress on enter, but only while Active;
// forms set Active when focus lands on it.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

// View draws the filled style when focused and the outlined one otherwise.
func (b Button) View() string {
	style := theme.ButtonInactive
	if b.Active {
		style = theme.ButtonActive
	}
	return style.Render("▸ " + b.Label)
}
