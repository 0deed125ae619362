// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. On success an
// [AuthResult] is produced and handled by [RootModel] to finish the flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       focusRing
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	userName := newInput("ユーザー名", 32, false)
	userName.Focus()
	password := newInput("パスワード（数字）", 32, true)

	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: focusRing{inputs: []textinput.Model{userName, password}, rows: 2},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			userName := strings.TrimSpace(m.form.inputs[0].Value())
			password := m.form.inputs[1].Value()
			if userName == "" || password == "" {
				m.errMsg = "ユーザー名とパスワードを入力してください"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(userName, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("ユーザー名 │ ")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("パスワード │ ")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[ログイン中...]\n")
	} else {
		b.WriteString("\n[ログイン]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ログイン", strings.TrimRight(b.String(), "\n"), "esc: 戻る │ tab: 次の項目 │ enter: ログイン")
}

func (m *LoginModel) cmdLogin(userName, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.LoginRequest{
			UserName: userName,
			Password: password,
		})
		return AuthResult{Session: session, Err: err}
	}
}
