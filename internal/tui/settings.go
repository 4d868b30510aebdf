package tui

import "strings"

var themeChoices = []string{"dark", "light"}

type settingsModel struct {
	idx     int
	loading bool
	saving  bool
	status  string
}

func newSettingsModel() settingsModel {
	return settingsModel{loading: true}
}

func (m settingsModel) selected() string {
	return themeChoices[m.idx]
}

func (m *settingsModel) setTheme(theme string) {
	for i, choice := range themeChoices {
		if choice == theme {
			m.idx = i
			return
		}
	}
	m.idx = 0
}

func (m settingsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Зареждане...\n")
		return renderPage("НАСТРОЙКИ", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString("Тема:\n\n")
	for i, choice := range themeChoices {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + choice + "\n")
	}

	if m.saving {
		b.WriteString("\n[Запазване...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("НАСТРОЙКИ", strings.TrimRight(b.String(), "\n"), "enter: запази │ esc: табло")
}
