package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/tui"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run returns nil when the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("user_id", session.UserID).Msg("logged out")
	}
}

// signIn resumes the stored session while its token is still accepted and
// falls back to the login flow otherwise.
func (a *App) signIn(ctx context.Context) (models.LocalSession, error) {
	session, err := a.services.AuthService.Restore(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		return a.ui.LoginFlow(ctx)
	case err != nil:
		return models.LocalSession{}, fmt.Errorf("restore session: %w", err)
	}

	_, err = a.services.ChatService.Session(ctx)
	if errors.Is(err, service.ErrTokenIsExpired) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		a.logger.Info().Err(err).Msg("stored token rejected, logging in again")
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("could not clear stored session")
		}
		return a.ui.LoginFlow(ctx)
	}
	if err != nil {
		// the server may just be down, the UI shows it as offline
		a.logger.Warn().Err(err).Msg("could not reach server with stored session")
	}

	return session, nil
}
