package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	input      textinput.Model
	submitting bool
}

func newLoginModel() loginModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "ptlc_..."
	keyInput.CharLimit = 256
	keyInput.Width = 48
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'
	keyInput.Focus()

	return loginModel{input: keyInput}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Влез с клиентския API ключ от панела.\n")
	b.WriteString("Account -> API Credentials -> Create\n\n")
	b.WriteString("API ключ │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Влизане...]\n")
	} else {
		b.WriteString("\n[Влез]\n")
	}

	return renderPage("CLOUDIX — ВХОД", strings.TrimRight(b.String(), "\n"), "enter: влез")
}
