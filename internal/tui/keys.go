package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	submit    key.Binding
	esc       key.Binding
	quit      key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "shift+tab")),
	down:      key.NewBinding(key.WithKeys("down", "tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
}
