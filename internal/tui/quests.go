// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package tui

import (
	"fmt"
	"strings"

	"github.com/cloudix/coindesk/models"
)

type questsModel struct {
	quests   []models.QuestStatus
	idx      int
	loading  bool
	claiming bool
	status   string
}

func newQuestsModel() questsModel {
	return questsModel{loading: true}
}

func (m questsModel) current() (models.QuestStatus, bool) {
	if len(m.quests) == 0 || m.idx < 0 || m.idx >= len(m.quests) {
		return models.QuestStatus{}, false
	}
	return m.quests[m.idx], true
}

func (m questsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Зареждане...\n")
		return renderPage("МИСИИ", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString("Дневни мисии, взимат се по веднъж на календарен ден.\n\n")
	for i, q := range m.quests {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s (+%d)", cursor, q.Icon, q.Title, q.Coins)
		if !q.CanClaim {
			line = claimedStyle.Render(line + "  ✓ взета днес")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.claiming {
		b.WriteString("\n[Взимане...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("МИСИИ", strings.TrimRight(b.String(), "\n"), "enter: вземи │ esc: табло")
}
