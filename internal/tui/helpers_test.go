package tui

import (
	"testing"

	"github.com/MKhiriev/go-ai-feedback/internal/mock"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.LocalSession{
	UserID:      "0192c4f0-0000-7000-8000-000000000001",
	UserName:    "hanako",
	CharacterID: models.SpeakerZundamon,
	Token:       "token",
}

type clientMocks struct {
	auth     *mock.MockClientAuthService
	chat     *mock.MockClientChatService
	services *service.ClientServices
}

func newClientMocks(t *testing.T) clientMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := clientMocks{
		auth: mock.NewMockClientAuthService(ctrl),
		chat: mock.NewMockClientChatService(ctrl),
	}
	m.services = &service.ClientServices{
		AuthService: m.auth,
		ChatService: m.chat,
		Heartbeat:   mock.NewMockClientHeartbeat(ctrl),
	}
	return m
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and every command of a batch it yields.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	for _, msg := range collect(cmd) {
		if typed, ok := msg.(T); ok {
			return typed
		}
	}

	var zero T
	require.Failf(t, "message not produced", "want %T", zero)
	return zero
}

type stubPage struct {
	name     string
	received []tea.Msg
	inits    int
}

func (s *stubPage) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubPage) View() string {
	return s.name
}
