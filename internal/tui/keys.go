package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	save     key.Binding
	clear    key.Binding
	replay   key.Binding
	copy     key.Binding
	history  key.Binding
	settings key.Binding
	logout   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	clear:    key.NewBinding(key.WithKeys("ctrl+l")),
	replay:   key.NewBinding(key.WithKeys("ctrl+r")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	history:  key.NewBinding(key.WithKeys("ctrl+b")),
	settings: key.NewBinding(key.WithKeys("ctrl+t")),
	logout:   key.NewBinding(key.WithKeys("ctrl+o")),
}
