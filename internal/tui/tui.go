package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services          *service.ClientServices
	buildInfo         models.AppBuildInfo
	heartbeatInterval time.Duration
	logger            *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, heartbeatInterval time.Duration, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:          services,
		buildInfo:         buildInfo,
		heartbeatInterval: heartbeatInterval,
		logger:            logger,
	}, nil
}

// LoginFlow runs the menu, login and sign-up pages until the user is signed
// in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.LocalSession, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.LocalSession{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.LocalSession{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.result.UserID).Msg("signed in")
	return result.result, nil
}

// MainLoop runs the chat, history and settings pages. The server heartbeat
// runs for as long as the loop is open.
func (t *TUI) MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error) {
	state := &clientState{session: session}
	pages := map[string]tea.Model{
		"chat":     NewChatModel(ctx, t.services, state),
		"history":  NewHistoryModel(ctx, t.services.ChatService, state),
		"settings": NewSettingsModel(ctx, t.services.AuthService, state),
	}

	root := NewRootModel(pages, "chat", t.buildInfo).withState(state)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.Heartbeat.Start(ctx, t.heartbeatInterval, func(online bool) {
		program.Send(heartbeatMsg{online: online})
	})
	defer t.services.Heartbeat.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}
