package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/service"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	req := models.RegisterRequest{UserName: "hanako", Password: "1234", CharacterID: models.SpeakerTsumugi}
	user := models.User{UserID: testUserID, UserName: "hanako", Password: "$2a$hash", CharacterID: models.SpeakerTsumugi}

	t.Run("issues token", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(user, nil)
		f.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed"}, nil)

		rec := f.do(http.MethodPost, "/api/user/register", req, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
		body := decodeBody[models.AuthResponse](t, rec)
		assert.Equal(t, "signed", body.Token)
		assert.Equal(t, testUserID, body.User.UserID)
		assert.Empty(t, body.User.Password)
	})

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"duplicate name", fmt.Errorf("create user: %w", store.ErrUserNameAlreadyExists), http.StatusConflict, app.MsgUserNameAlreadyExists},
		{"invalid password", errors.Join(service.ErrInvalidDataProvided, validators.ErrPasswordNotDigits), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"store down", errors.New("connection refused"), http.StatusBadGateway, app.MsgRegistrationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(models.User{}, tt.err)

			rec := f.do(http.MethodPost, "/api/user/register", req, "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.do(http.MethodPost, "/api/user/register", "{", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(user, nil)
		f.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{}, service.ErrTokenCreationFailed)

		rec := f.do(http.MethodPost, "/api/user/register", req, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	req := models.LoginRequest{UserName: "hanako", Password: "1234"}

	t.Run("ok", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := models.User{UserID: testUserID, UserName: "hanako"}
		f.auth.EXPECT().Login(gomock.Any(), req).Return(user, nil)
		f.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed"}, nil)

		rec := f.do(http.MethodPost, "/api/user/login", req, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed", decodeBody[models.AuthResponse](t, rec).Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), req).Return(models.User{}, service.ErrWrongPassword)

		rec := f.do(http.MethodPost, "/api/user/login", req, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidLoginPassword, errorMessage(t, rec))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), req).Return(models.User{}, fmt.Errorf("find: %w", store.ErrNoUserWasFound))

		rec := f.do(http.MethodPost, "/api/user/login", req, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateCharacter(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		f.history.EXPECT().UpdateUserCharacter(gomock.Any(), testUserID, models.SpeakerMeimeiHimari).
			Return(models.UpdateResult{Success: true})

		rec := f.do(http.MethodPut, "/api/user/character", models.CharacterUpdateRequest{CharacterID: models.SpeakerMeimeiHimari}, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[models.UpdateResult](t, rec).Success)
	})

	t.Run("failure is reported in body", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorize()
		f.history.EXPECT().UpdateUserCharacter(gomock.Any(), testUserID, 99).
			Return(models.UpdateResult{Error: "unknown character"})

		rec := f.do(http.MethodPut, "/api/user/character", models.CharacterUpdateRequest{CharacterID: 99}, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody[models.UpdateResult](t, rec)
		assert.False(t, result.Success)
		assert.Equal(t, "unknown character", result.Error)
	})
}

func TestCharacters(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/characters", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Characters(), decodeBody[[]models.Character](t, rec))
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)

		rec := f.do(http.MethodGet, "/api/session", nil, "old")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgTokenIsExpired, errorMessage(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		rec := f.do(http.MethodGet, "/api/session", nil, "forged")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, errorMessage(t, rec))
	})
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		token   string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer   abc  ", "abc", nil},
		{"Basic abc", "", ErrInvalidAuthorizationHeader},
		{"abc", "", ErrInvalidAuthorizationHeader},
		{"Bearer  ", "", ErrInvalidAuthorizationHeader},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.token, token)
		})
	}
}
