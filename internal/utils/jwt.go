package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidSignerParams = errors.New("invalid params for JWT signer")
	errEmptySubject        = errors.New("empty subject claim")
)

// JWTSigner issues and verifies HS256 tokens whose subject is a user id.
type JWTSigner struct {
	issuer   string
	key      []byte
	duration time.Duration
	parser   *jwt.Parser
}

func NewJWTSigner(issuer, signKey string, duration time.Duration) (*JWTSigner, error) {
	if issuer == "" || signKey == "" || duration <= 0 {
		return nil, errInvalidSignerParams
	}

	return &JWTSigner{
		issuer:   issuer,
		key:      []byte(signKey),
		duration: duration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Sign issues a token for userID that expires after the signer's duration.
func (s *JWTSigner) Sign(userID string, now time.Time) (models.Token, error) {
	if userID == "" {
		return models.Token{}, errEmptySubject
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("sign JWT: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// Parse verifies signature, algorithm, issuer and expiry. Errors wrap the
// jwt/v5 sentinels, so jwt.ErrTokenExpired can be matched with errors.Is.
func (s *JWTSigner) Parse(tokenString string) (models.Token, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("parse JWT: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("parse JWT subject: %w", err)
	}
	if userID == "" {
		return models.Token{}, errEmptySubject
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
