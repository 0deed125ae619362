package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// rowCharacter is the form row holding the character picker.
const rowCharacter = 3

// RegisterModel is the sign-up screen: user name, password twice and the
// character who will answer. A successful sign-up logs the user in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       focusRing
	picker     characterPicker
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	userName := newInput("ユーザー名", 32, false)
	userName.Focus()

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: focusRing{
			inputs: []textinput.Model{
				userName,
				newInput("パスワード（数字4桁以上）", 32, true),
				newInput("パスワード（確認）", 32, true),
			},
			rows: 4,
		},
		picker: newCharacterPicker(models.SpeakerZundamon),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdLoadCharacters(m.ctx, m.auth))
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case charactersLoadedMsg:
		// the bundled catalog stays when the server cannot be reached
		if msg.err == nil {
			m.picker.setCharacters(msg.characters, m.picker.selected().ID)
		}
		return m, nil
	case AuthResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.left) && m.form.focus == rowCharacter:
			m.picker.prev()
			return m, nil
		case key.Matches(keyMsg, keys.right) && m.form.focus == rowCharacter:
			m.picker.next()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	if !m.form.onInput() {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	userName := strings.TrimSpace(m.form.inputs[0].Value())
	password := m.form.inputs[1].Value()
	repeat := m.form.inputs[2].Value()

	switch {
	case userName == "" || password == "":
		m.errMsg = "ユーザー名とパスワードを入力してください"
		return m, nil
	case password != repeat:
		m.errMsg = "パスワードが一致しません"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	auth := m.auth
	req := models.RegisterRequest{
		UserName:    userName,
		Password:    password,
		CharacterID: m.picker.selected().ID,
	}
	return m, func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return AuthResult{Session: session, Err: err}
	}
}

func (m *RegisterModel) View() string {
	labels := []string{"ユーザー名", "パスワード", "確認　　　"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ ")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("キャラ　　 │ ")
	b.WriteString(m.picker.View(m.form.focus == rowCharacter))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[登録中...]\n")
	} else {
		b.WriteString("\n[登録]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("新規登録", strings.TrimRight(b.String(), "\n"), "esc: 戻る │ tab: 次の項目 │ ←/→: キャラ選択 │ enter: 登録")
}
