package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ChatModel is the journaling page: the user writes what they did in
// Japanese and the selected character answers in text and voice.
type ChatModel struct {
	ctx   context.Context
	chat  service.ClientChatService
	auth  service.ClientAuthService
	state *clientState

	input   textinput.Model
	spinner spinner.Model
	width   int

	transcript   models.Transcript
	lastFeedback string
	processing   bool
	saving       bool

	status string
	notice string
	errMsg string
}

func NewChatModel(ctx context.Context, services *service.ClientServices, state *clientState) *ChatModel {
	input := textinput.New()
	input.Placeholder = "今日やったことを日本語で書いてください"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return &ChatModel{
		ctx:     ctx,
		chat:    services.ChatService,
		auth:    services.AuthService,
		state:   state,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadSession())
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-16)
		return m, nil

	case sessionLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.transcript = msg.view.Transcript
		m.lastFeedback = lastCharacterTurn(m.transcript)
		m.processing = msg.view.Processing
		return m, nil

	case messageSentMsg:
		m.processing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, m.cmdLoadSession()
		}
		m.errMsg = ""
		m.transcript = msg.result.Transcript
		m.notice = msg.result.Notice
		if msg.result.FeedbackOK {
			m.lastFeedback = msg.result.Feedback
		} else {
			m.notice = "応答がありませんでした。もう一度送ってください"
		}
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, m.setStatus("保存しました")

	case clearedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.transcript = nil
		m.lastFeedback = ""
		m.notice = ""
		return m, m.setStatus("クリアしました")

	case replayedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.processing && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.enter):
		if m.processing {
			m.notice = "前のメッセージを処理中です"
			return m, nil, true
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil, true
		}
		m.input.Reset()
		m.processing = true
		m.notice = ""
		m.errMsg = ""
		m.transcript = append(m.transcript.Clone(), models.Entry{Speaker: models.SpeakerUser, Text: text})
		return m, tea.Batch(m.spinner.Tick, m.cmdSend(text)), true

	case key.Matches(msg, keys.save):
		if m.saving || m.processing {
			return m, nil, true
		}
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSave()), true

	case key.Matches(msg, keys.clear):
		if m.processing {
			return m, nil, true
		}
		return m, m.cmdClear(), true

	case key.Matches(msg, keys.replay):
		return m, m.cmdReplay(), true

	case key.Matches(msg, keys.copy):
		if m.lastFeedback == "" {
			return m, m.setStatus("コピーするものがありません"), true
		}
		if err := writeClipboard(m.lastFeedback); err != nil {
			m.errMsg = "コピーできませんでした: " + err.Error()
			return m, nil, true
		}
		return m, m.setStatus("コピーしました"), true

	case key.Matches(msg, keys.history):
		return m, func() tea.Msg { return NavigateTo{Page: "history"} }, true

	case key.Matches(msg, keys.settings):
		return m, func() tea.Msg { return NavigateTo{Page: "settings"} }, true

	case key.Matches(msg, keys.logout):
		ctx := m.ctx
		auth := m.auth
		return m, func() tea.Msg {
			_ = auth.Logout(ctx)
			return logoutMsg{}
		}, true
	}

	return m, nil, false
}

func (m *ChatModel) View() string {
	character := m.state.character()

	var b strings.Builder
	if len(m.transcript) == 0 {
		b.WriteString(helpStyle.Render("まだ会話がありません"))
		b.WriteString("\n")
	}
	for _, entry := range m.transcript {
		b.WriteString(m.renderEntry(entry, character))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.processing:
		b.WriteString(m.spinner.View() + " " + character.Name + "が考え中...")
	case m.saving:
		b.WriteString(m.spinner.View() + " 保存中...")
	default:
		b.WriteString("> " + m.input.View())
	}
	b.WriteString("\n")

	for _, line := range []string{m.notice, m.status} {
		if line != "" {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
	}

	return renderPage(
		character.Name+"と日記",
		strings.TrimRight(b.String(), "\n"),
		"enter: 送信 │ ctrl+s: 保存 │ ctrl+l: クリア │ ctrl+r: 再生 │ ctrl+y: コピー │ ctrl+b: 履歴 │ ctrl+t: 設定 │ ctrl+o: ログアウト",
	)
}

func (m *ChatModel) renderEntry(entry models.Entry, character models.Character) string {
	var prefix string
	if entry.Speaker == models.SpeakerCharacter {
		prefix = characterStyle(character).Render(character.Name) + ": "
	} else {
		prefix = userStyle.Render("あなた") + ": "
	}

	if m.width <= 0 {
		return prefix + entry.Text
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix,
		lipgloss.NewStyle().Width(max(10, m.width-lipgloss.Width(prefix)-6)).Render(entry.Text))
}

func (m *ChatModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *ChatModel) cmdLoadSession() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		view, err := chat.Session(ctx)
		return sessionLoadedMsg{view: view, err: err}
	}
}

func (m *ChatModel) cmdSend(text string) tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		result, err := chat.Send(ctx, text)
		return messageSentMsg{result: result, err: err}
	}
}

func (m *ChatModel) cmdSave() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		resp, err := chat.Save(ctx)
		return savedMsg{resp: resp, err: err}
	}
}

func (m *ChatModel) cmdClear() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		return clearedMsg{err: chat.Clear(ctx)}
	}
}

func (m *ChatModel) cmdReplay() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		return replayedMsg{err: chat.Replay(ctx)}
	}
}

func lastCharacterTurn(t models.Transcript) string {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Speaker == models.SpeakerCharacter {
			return t[i].Text
		}
	}
	return ""
}
