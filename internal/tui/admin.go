// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type adminModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newAdminModel() adminModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email@example.com"
	emailInput.CharLimit = 256
	emailInput.Width = 40
	emailInput.Focus()

	amountInput := textinput.New()
	amountInput.Placeholder = "монети"
	amountInput.CharLimit = 6
	amountInput.Width = 10

	return adminModel{inputs: []textinput.Model{emailInput, amountInput}}
}

func (m adminModel) View() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Сума  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Изпълнява се...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "enter: добави монети │ ctrl+r: reset redemption │ ctrl+d: reset всички данни\n"
	hotKeys += "esc: табло │ tab: след. поле"
	return renderPage("АДМИНИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), hotKeys)
}
