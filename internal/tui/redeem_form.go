// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/cloudix/coindesk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// redeemFormModel is the server-configuration step between the two
// redemption phases. The first input is the server name; the rest are
// built from the user-editable variables of the validated egg.
type redeemFormModel struct {
	plan       models.ServicePlanView
	panelURL   string
	inputs     []textinput.Model
	labels     []string
	envKeys    []string
	focus      int
	submitting bool
}

func newRedeemFormModel(res models.ValidateRedeemResult) redeemFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "празно = автоматично име"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	m := redeemFormModel{
		plan:     res.Plan,
		panelURL: res.PanelURL,
		inputs:   []textinput.Model{nameInput},
		labels:   []string{"Име на сървъра"},
	}

	for _, v := range res.EggConfig.Variables {
		if !v.UserViewable || !v.UserEditable {
			continue
		}
		input := textinput.New()
		input.Placeholder = v.DefaultValue
		input.CharLimit = 256
		input.Width = 40
		m.inputs = append(m.inputs, input)
		m.labels = append(m.labels, v.Name)
		m.envKeys = append(m.envKeys, v.EnvVariable)
	}

	return m
}

// environment collects the non-empty variable overrides entered by the user.
func (m redeemFormModel) environment() map[string]string {
	env := make(map[string]string, len(m.envKeys))
	for i, envKey := range m.envKeys {
		value := strings.TrimSpace(m.inputs[i+1].Value())
		if value != "" {
			env[envKey] = value
		}
	}
	return env
}

func (m redeemFormModel) serverName() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m redeemFormModel) View() string {
	var b strings.Builder
	b.WriteString("План: ")
	b.WriteString(m.plan.Name)
	b.WriteString("\n\n")

	labelWidth := 0
	for _, label := range m.labels {
		if n := utf8.RuneCountInString(label); n > labelWidth {
			labelWidth = n
		}
	}
	for i, input := range m.inputs {
		b.WriteString(m.labels[i])
		b.WriteString(strings.Repeat(" ", labelWidth-utf8.RuneCountInString(m.labels[i])))
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Създаване на сървъра...]\n")
	} else {
		b.WriteString("\n[Създай]\n")
	}

	return renderPage("НАСТРОЙКА НА СЪРВЪРА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: продължи")
}
