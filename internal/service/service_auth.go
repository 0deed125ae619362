package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/internal/config"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks sign-up and login requests before any store call.
	validator validators.Validator

	// ids issues UUIDv7 user ids.
	ids *utils.UUIDGenerator

	// tokens is nil when the config carries no sign key; token operations
	// then fail with ErrTokenCreationFailed / ErrTokenIsExpiredOrInvalid.
	tokens *utils.JWTSigner
	now    func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	tokens, err := utils.NewJWTSigner(cfg.TokenIssuer, cfg.TokenSignKey, cfg.TokenDuration)
	if err != nil {
		logger.Error().Err(err).Msg("token signer is not configured")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokens:         tokens,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The request is validated (non-empty name, digit-only password of at least
// four characters, known character) before the store is touched. The password
// is stored as a bcrypt hash under a fresh UUIDv7 id.
//
// Returns the persisted user without the password hash, or:
//   - ErrInvalidDataProvided joined with the validation error.
//   - A wrapped storage error (e.g. store.ErrUserNameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("user_name", req.UserName).Msg("invalid registration data")
		return models.User{}, errors.Join(ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:      a.ids.Generate(),
		UserName:    strings.TrimSpace(req.UserName),
		Password:    hash,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user by name and password.
//
// Returns the user record without the password hash, or:
//   - ErrInvalidDataProvided if the name or the password is empty.
//   - ErrWrongPassword if the user does not exist or the password does not
//     match. Both cases look the same to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid login data")
		return models.User{}, errors.Join(ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, strings.TrimSpace(req.UserName))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("user_name", req.UserName).Msg("login for unknown user")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.Password, req.Password); err != nil {
		log.Warn().Err(err).Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser.Public(), nil
}

// GetUser returns the user record without the password hash.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user.Public(), nil
}

// CreateToken issues a signed JWT whose subject is the user id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.tokens == nil {
		return models.Token{}, ErrTokenCreationFailed
	}

	token, err := a.tokens.Sign(user.UserID, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens are reported as ErrTokenIsExpired; any other validation
// failure (wrong issuer, signature, malformed) as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokens == nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := a.tokens.Parse(tokenString)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
