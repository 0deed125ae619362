package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0192c4f0-7c1a-7000-8000-000000000123"

func newTestSigner(t *testing.T, issuer string) *JWTSigner {
	t.Helper()

	s, err := NewJWTSigner(issuer, "secret-key", time.Hour)
	require.NoError(t, err)
	return s
}

func TestNewJWTSigner_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		key      string
		duration time.Duration
	}{
		{name: "empty issuer", key: "k", duration: time.Hour},
		{name: "empty key", issuer: "iss", duration: time.Hour},
		{name: "zero duration", issuer: "iss", key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJWTSigner(tt.issuer, tt.key, tt.duration)
			assert.ErrorIs(t, err, errInvalidSignerParams)
		})
	}
}

func TestJWTSigner_RoundTrip(t *testing.T) {
	s := newTestSigner(t, "go-ai-feedback")
	now := time.Now()

	token, err := s.Sign(testUserID, now)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "go-ai-feedback", claims.Issuer)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	parsed, err := s.Parse(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
}

func TestJWTSigner_SignEmptyUser(t *testing.T) {
	_, err := newTestSigner(t, "iss").Sign("", time.Now())
	assert.ErrorIs(t, err, errEmptySubject)
}

func TestJWTSigner_ParseRejects(t *testing.T) {
	s := newTestSigner(t, "go-ai-feedback")

	expired, err := s.Sign(testUserID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherIssuer, err := newTestSigner(t, "someone-else").Sign(testUserID, time.Now())
	require.NoError(t, err)

	otherKey, err := NewJWTSigner("go-ai-feedback", "another-key", time.Hour)
	require.NoError(t, err)
	forged, err := otherKey.Sign(testUserID, time.Now())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "go-ai-feedback",
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "expired", token: expired.SignedString, want: jwt.ErrTokenExpired},
		{name: "wrong issuer", token: otherIssuer.SignedString, want: jwt.ErrTokenInvalidIssuer},
		{name: "wrong key", token: forged.SignedString, want: jwt.ErrTokenSignatureInvalid},
		{name: "alg none", token: none, want: jwt.ErrTokenSignatureInvalid},
		{name: "malformed", token: "not.a.jwt", want: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "  bearer   abc ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
