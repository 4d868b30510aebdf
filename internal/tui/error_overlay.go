package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Грешка") + "\n\n" + m.message + "\n\nenter / esc затвори"
	return overlayBoxStyle.Render(content)
}
