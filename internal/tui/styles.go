package tui

import (
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	userStyle       = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// characterStyle colors the character's name and turns with its theme.
func characterStyle(c models.Character) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Color))
}

// characterOrDefault resolves id in the catalog, falling back to the first
// bundled character.
func characterOrDefault(id int) models.Character {
	if c, ok := models.FindCharacter(id); ok {
		return c
	}
	return models.Characters()[0]
}
