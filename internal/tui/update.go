package tui

import (
	"strings"

	"github.com/cloudix/coindesk/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type updateModel struct {
	checking bool
	checked  bool
	result   models.UpdateCheckResult
	spinner  spinner.Model
}

func newUpdateModel() updateModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return updateModel{spinner: s}
}

func (m updateModel) View() string {
	var b strings.Builder

	if m.checking {
		b.WriteString(m.spinner.View())
		b.WriteString(" Проверка за актуализация...\n")
		return renderPage("АКТУАЛИЗАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: табло")
	}

	if !m.checked {
		b.WriteString("Натисни enter за проверка.\n")
		return renderPage("АКТУАЛИЗАЦИЯ", strings.TrimRight(b.String(), "\n"), "enter: провери │ esc: табло")
	}

	b.WriteString("Текуща версия   │ ")
	b.WriteString(valueOrDash(m.result.CurrentVersion))
	b.WriteString("\n")
	b.WriteString("Налична версия  │ ")
	b.WriteString(valueOrDash(m.result.LatestVersion))
	b.WriteString("\n\n")

	if !m.result.HasUpdate {
		b.WriteString("Имаш последната версия.\n")
		return renderPage("АКТУАЛИЗАЦИЯ", strings.TrimRight(b.String(), "\n"), "enter: провери пак │ esc: табло")
	}

	b.WriteString("Налична е нова версия!\n")
	for _, line := range m.result.Changelog {
		b.WriteString("  · " + line + "\n")
	}

	return renderPage("АКТУАЛИЗАЦИЯ", strings.TrimRight(b.String(), "\n"), "d: изтегли │ i: инсталирай (затваря клиента) │ esc: табло")
}
