package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type profileModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newProfileModel(username, email string) profileModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "потребителско име"
	nameInput.CharLimit = 50
	nameInput.Width = 40
	nameInput.SetValue(username)
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email@example.com"
	emailInput.CharLimit = 256
	emailInput.Width = 40
	emailInput.SetValue(email)

	return profileModel{inputs: []textinput.Model{nameInput, emailInput}}
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString("Име    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Запазване...]\n")
	} else {
		b.WriteString("\n[Запази]\n")
	}

	return renderPage("ПРОФИЛ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: запази")
}
