package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const previewLines = 6

// HistoryModel browses the saved logs of one calendar day and resumes one of
// them in the chat page.
type HistoryModel struct {
	ctx   context.Context
	chat  service.ClientChatService
	state *clientState
	now   func() time.Time

	date    textinput.Model
	logs    []models.ProgressLog
	idx     int
	loading bool
	loaded  string
	errMsg  string
}

func NewHistoryModel(ctx context.Context, chat service.ClientChatService, state *clientState) *HistoryModel {
	date := newInput("YYYY-MM-DD", 10, false)
	date.Focus()

	return &HistoryModel{
		ctx:   ctx,
		chat:  chat,
		state: state,
		now:   time.Now,
		date:  date,
	}
}

// Init opens today's logs.
func (m *HistoryModel) Init() tea.Cmd {
	today := m.now().Format(time.DateOnly)
	m.date.SetValue(today)
	m.loading = true
	return tea.Batch(textinput.Blink, m.cmdLoad(today))
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loaded = msg.date
		m.logs = msg.logs
		m.idx = 0
		return m, nil

	case sessionLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "chat", Payload: msg} }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "chat"} }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.logs)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.date, cmd = m.date.Update(msg)
	return m, cmd
}

// submit loads another day when the date was edited and resumes the selected
// log otherwise.
func (m *HistoryModel) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	date := strings.TrimSpace(m.date.Value())
	if date != m.loaded {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			m.errMsg = "日付は YYYY-MM-DD の形式で入力してください"
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad(date)
	}

	if len(m.logs) == 0 {
		return m, nil
	}

	ctx, chat := m.ctx, m.chat
	chatID := m.logs[m.idx].ChatID
	return m, func() tea.Msg {
		view, err := chat.Resume(ctx, chatID)
		return sessionLoadedMsg{view: view, err: err}
	}
}

func (m *HistoryModel) View() string {
	var b strings.Builder
	b.WriteString("日付 │ ")
	b.WriteString(m.date.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("読み込み中...\n")
	case len(m.logs) == 0:
		b.WriteString(helpStyle.Render("この日の記録はありません"))
		b.WriteString("\n")
	default:
		loc := m.now().Location()
		for i, log := range m.logs {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			first := "-"
			if len(log.ChatLog) > 0 {
				first = fitText(log.ChatLog[0].Text, 40)
			}
			b.WriteString(fmt.Sprintf("%s %s │ %2d件 │ %s\n",
				cursor, log.CreatedAt.In(loc).Format("15:04"), len(log.ChatLog), first))
		}
		b.WriteString("\n")
		b.WriteString(m.preview(m.logs[m.idx]))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
	}

	return renderPage("履歴", strings.TrimRight(b.String(), "\n"), "enter: 日付を開く／続きから │ ↑/↓: 選択 │ esc: 戻る")
}

func (m *HistoryModel) preview(log models.ProgressLog) string {
	character := m.state.character()

	var b strings.Builder
	for i, entry := range log.ChatLog {
		if i == previewLines {
			b.WriteString(helpStyle.Render(fmt.Sprintf("…ほか %d 件", len(log.ChatLog)-previewLines)))
			break
		}
		if entry.Speaker == models.SpeakerCharacter {
			b.WriteString(characterStyle(character).Render(character.Name))
		} else {
			b.WriteString(userStyle.Render("あなた"))
		}
		b.WriteString(": ")
		b.WriteString(fitText(entry.Text, 60))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *HistoryModel) cmdLoad(date string) tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		logs, err := chat.Logs(ctx, date)
		return logsLoadedMsg{date: date, logs: logs, err: err}
	}
}
