package tui

import (
	"strings"
)

type redeemDoneModel struct {
	service  string
	serverID string
	balance  int
	panelURL string
	status   string
}

func (m redeemDoneModel) View() string {
	var b strings.Builder
	b.WriteString("🎉 FiveM сървърът е създаден!\n\n")
	b.WriteString("Услуга │ ")
	b.WriteString(m.service)
	b.WriteString("\n")
	b.WriteString("ID     │ ")
	b.WriteString(m.serverID)
	b.WriteString("\n")
	b.WriteString("Панел  │ ")
	b.WriteString(m.panelURL)
	b.WriteString("\n")
	b.WriteString("Баланс │ ")
	b.WriteString(coinsLine(m.balance))

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("ГОТОВО", b.String(), "c: копирай ID │ o: отвори панела │ esc: табло")
}
