package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
)

type clientAuthService struct {
	sessions  store.LocalSessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    log,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LocalSession{}, err
	}

	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.remember(ctx, auth)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LocalSession{}, err
	}

	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.remember(ctx, auth)
}

// remember stores the authenticated user locally. A failing local store only
// costs the next start a login, so it is logged and not returned.
func (a *clientAuthService) remember(ctx context.Context, auth models.AuthResponse) (models.LocalSession, error) {
	session := models.LocalSession{
		UserID:      auth.User.UserID,
		CharacterID: auth.User.CharacterID,
		UserName:    auth.User.UserName,
		Token:       auth.Token,
	}
	if !session.Valid() {
		return models.LocalSession{}, fmt.Errorf("%w: incomplete auth response", ErrInvalidDataProvided)
	}

	if err := a.sessions.Store(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.remember").Msg("error storing local session")
	}
	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return nil
}

func (a *clientAuthService) UpdateCharacter(ctx context.Context, characterID int) (models.LocalSession, error) {
	if err := a.validator.Validate(ctx, models.CharacterUpdateRequest{CharacterID: characterID}); err != nil {
		return models.LocalSession{}, err
	}

	session, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.LocalSession{}, ErrNotLoggedIn
		}
		return models.LocalSession{}, err
	}

	result, err := a.adapter.UpdateCharacter(ctx, characterID)
	if err != nil {
		return session, mapAdapterError(err)
	}
	if !result.Success {
		return session, fmt.Errorf("update character: %s", result.Error)
	}

	session.CharacterID = characterID
	if err = a.sessions.Store(ctx, session); err != nil {
		return session, fmt.Errorf("store local session: %w", err)
	}
	return session, nil
}

func (a *clientAuthService) Characters(ctx context.Context) ([]models.Character, error) {
	characters, err := a.adapter.Characters(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return characters, nil
}
