package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// newInput builds a text input in the form style shared by all pages.
func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// focusRing moves the focus across a fixed number of form rows. Rows below
// len(inputs) are text inputs, the rest are custom widgets.
type focusRing struct {
	inputs []textinput.Model
	rows   int
	focus  int
}

func (f *focusRing) next() {
	f.move(1)
}

func (f *focusRing) prev() {
	f.move(-1)
}

func (f *focusRing) move(delta int) {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + f.rows) % f.rows
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// onInput reports whether the focused row is a text input.
func (f *focusRing) onInput() bool {
	return f.focus < len(f.inputs)
}
