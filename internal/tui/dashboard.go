// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"fmt"
	"strings"

	"github.com/cloudix/coindesk/models"
)

type dashboardModel struct {
	user    models.UserRecord
	servers []models.PanelServer
	isAdmin bool
	loading bool
	status  string
	idx     int
}

func newDashboardModel() dashboardModel {
	return dashboardModel{loading: true}
}

func (m dashboardModel) currentServer() (models.PanelServer, bool) {
	if len(m.servers) == 0 || m.idx < 0 || m.idx >= len(m.servers) {
		return models.PanelServer{}, false
	}
	return m.servers[m.idx], true
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Зареждане...\n")
		return renderPage("CLOUDIX — ТАБЛО", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString("Потребител │ ")
	b.WriteString(valueOrDash(m.user.Username))
	b.WriteString("\n")
	b.WriteString("Email      │ ")
	b.WriteString(valueOrDash(m.user.Email))
	b.WriteString("\n")
	b.WriteString("Баланс     │ ")
	b.WriteString(coinsLine(m.user.Coins))
	b.WriteString("\n")
	if m.user.HasRedeemed {
		b.WriteString("Услуга     │ ")
		b.WriteString(m.user.RedeemedService)
		b.WriteString("\n")
	}

	b.WriteString("\nСървъри:\n")
	if len(m.servers) == 0 {
		b.WriteString("  няма сървъри\n")
	}
	for i, srv := range m.servers {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  [%s]\n", cursor, srv.ID, fitText(srv.Name, 32), valueOrDash(srv.Status)))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "e: профил │ c: копирай ID │ o: панел │ r: обнови │ l: изход от акаунта"
	if m.isAdmin {
		hotKeys += " │ 5: админ"
	}
	hotKeys += "\n2: мисии │ 3: услуги │ 4: настройки │ u: актуализация │ R: изтрий данните"
	return renderPage("CLOUDIX — ТАБЛО", strings.TrimRight(b.String(), "\n"), hotKeys)
}
