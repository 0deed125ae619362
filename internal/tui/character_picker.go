package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
)

// characterPicker is a one-line selector over the character catalog.
type characterPicker struct {
	characters []models.Character
	idx        int
}

func newCharacterPicker(selected int) characterPicker {
	p := characterPicker{}
	p.setCharacters(models.Characters(), selected)
	return p
}

// setCharacters replaces the catalog and keeps selected when it is present.
func (p *characterPicker) setCharacters(characters []models.Character, selected int) {
	if len(characters) == 0 {
		return
	}
	p.characters = characters
	p.idx = 0
	for i, c := range characters {
		if c.ID == selected {
			p.idx = i
		}
	}
}

func (p *characterPicker) next() {
	p.idx = (p.idx + 1) % len(p.characters)
}

func (p *characterPicker) prev() {
	p.idx = (p.idx - 1 + len(p.characters)) % len(p.characters)
}

func (p characterPicker) selected() models.Character {
	return p.characters[p.idx]
}

func (p characterPicker) View(focused bool) string {
	var b strings.Builder
	if focused {
		b.WriteString("◀ ")
	} else {
		b.WriteString("  ")
	}

	for i, c := range p.characters {
		if i > 0 {
			b.WriteString("  ")
		}
		name := c.Name
		if i == p.idx {
			name = characterStyle(c).Underline(true).Render(name)
		} else {
			name = helpStyle.Render(name)
		}
		b.WriteString(name)
	}

	if focused {
		b.WriteString(" ▶")
	}
	return b.String()
}

// cmdLoadCharacters asks the server for the catalog.
func cmdLoadCharacters(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		characters, err := auth.Characters(ctx)
		return charactersLoadedMsg{characters: characters, err: err}
	}
}
