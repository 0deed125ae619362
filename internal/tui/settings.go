package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SettingsModel changes the character who answers.
type SettingsModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	state *clientState

	picker     characterPicker
	submitting bool
	status     string
	errMsg     string
}

func NewSettingsModel(ctx context.Context, auth service.ClientAuthService, state *clientState) *SettingsModel {
	return &SettingsModel{
		ctx:    ctx,
		auth:   auth,
		state:  state,
		picker: newCharacterPicker(state.session.CharacterID),
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.picker.setCharacters(m.picker.characters, m.state.session.CharacterID)
	return cmdLoadCharacters(m.ctx, m.auth)
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case charactersLoadedMsg:
		if msg.err == nil {
			m.picker.setCharacters(msg.characters, m.state.session.CharacterID)
		}
		return m, nil

	case characterUpdatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.state.session = msg.session
		m.status = m.state.character().Name + "に変更しました"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "chat"} }
		case key.Matches(msg, keys.left, keys.up):
			m.picker.prev()
		case key.Matches(msg, keys.right, keys.down):
			m.picker.next()
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			selected := m.picker.selected().ID
			if selected == m.state.session.CharacterID {
				m.status = "変更はありません"
				return m, nil
			}
			m.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				session, err := auth.UpdateCharacter(ctx, selected)
				return characterUpdatedMsg{session: session, err: err}
			}
		}
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	b.WriteString("キャラ │ ")
	b.WriteString(m.picker.View(true))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[保存中...]\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("設定", strings.TrimRight(b.String(), "\n"), "←/→: キャラ選択 │ enter: 保存 │ esc: 戻る")
}
