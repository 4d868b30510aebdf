// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"fmt"
	"strings"

	"github.com/cloudix/coindesk/models"
)

type servicesModel struct {
	plans      []models.ServicePlanView
	idx        int
	loading    bool
	validating bool
	balance    int
	redeemed   string
}

func newServicesModel() servicesModel {
	return servicesModel{loading: true}
}

func (m servicesModel) current() (models.ServicePlanView, bool) {
	if len(m.plans) == 0 || m.idx < 0 || m.idx >= len(m.plans) {
		return models.ServicePlanView{}, false
	}
	return m.plans[m.idx], true
}

func (m servicesModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Зареждане...\n")
		return renderPage("УСЛУГИ", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString("Баланс: ")
	b.WriteString(coinsLine(m.balance))
	b.WriteString("\n\n")

	if m.redeemed != "" {
		b.WriteString("Вече си използвал своето redemption: " + m.redeemed + "\n")
		return renderPage("УСЛУГИ", strings.TrimRight(b.String(), "\n"), "esc: табло")
	}

	for i, plan := range m.plans {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s — %d монети\n", cursor, plan.Name, plan.Cost))
		for _, feature := range plan.Features {
			b.WriteString("      · " + feature + "\n")
		}
	}

	if m.validating {
		b.WriteString("\n[Проверка...]\n")
	}

	return renderPage("УСЛУГИ", strings.TrimRight(b.String(), "\n"), "enter: избери │ esc: табло")
}
