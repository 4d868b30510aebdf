package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	edit     key.Binding
	copy     key.Binding
	open  key.Binding
	reset key.Binding
	yes   key.Binding
	no    key.Binding

	goDashboard key.Binding
	goQuests    key.Binding
	goServices  key.Binding
	goSettings  key.Binding
	goAdmin     key.Binding
	goUpdate    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	edit:     key.NewBinding(key.WithKeys("e")),
	copy:     key.NewBinding(key.WithKeys("c")),
	open:  key.NewBinding(key.WithKeys("o")),
	reset: key.NewBinding(key.WithKeys("R")),
	yes:   key.NewBinding(key.WithKeys("y")),
	no:    key.NewBinding(key.WithKeys("n")),

	goDashboard: key.NewBinding(key.WithKeys("1")),
	goQuests:    key.NewBinding(key.WithKeys("2")),
	goServices:  key.NewBinding(key.WithKeys("3")),
	goSettings:  key.NewBinding(key.WithKeys("4")),
	goAdmin:     key.NewBinding(key.WithKeys("5")),
	goUpdate:    key.NewBinding(key.WithKeys("u")),
}
