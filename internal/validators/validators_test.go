// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_RegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"valid", models.RegisterRequest{UserName: "alice", Password: "1234", CharacterID: 3}, nil},
		{"long password", models.RegisterRequest{UserName: "alice", Password: "00001111", CharacterID: 14}, nil},
		{"empty name", models.RegisterRequest{UserName: "  ", Password: "1234", CharacterID: 3}, ErrEmptyUserName},
		{"short password", models.RegisterRequest{UserName: "alice", Password: "123", CharacterID: 3}, ErrPasswordTooShort},
		{"letters in password", models.RegisterRequest{UserName: "alice", Password: "12a4", CharacterID: 3}, ErrPasswordNotDigits},
		{"full width digits", models.RegisterRequest{UserName: "alice", Password: "１２３４", CharacterID: 3}, ErrPasswordNotDigits},
		{"unknown character", models.RegisterRequest{UserName: "alice", Password: "1234", CharacterID: 99}, ErrUnknownCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Fields(t *testing.T) {
	v := NewUserValidator()
	req := &models.RegisterRequest{UserName: "alice", Password: "x"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldUserName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nope"), ErrUnknownField)
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{UserName: "a", Password: "1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Password: "1"}), ErrEmptyUserName)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{UserName: "a"}), ErrPasswordTooShort)
}

func TestUserValidator_Character(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CharacterUpdateRequest{CharacterID: models.SpeakerTsumugi}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.CharacterUpdateRequest{CharacterID: 0}), ErrUnknownCharacter)
}

func TestValidate_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, NewSessionValidator().Validate(context.Background(), "x"), ErrUnsupportedType)
}

func TestSessionValidator(t *testing.T) {
	v := NewSessionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.MessageRequest{Text: "Hello"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.MessageRequest{Text: " \n"}), ErrEmptyText)

	assert.NoError(t, v.Validate(ctx, models.ResumeRequest{ChatID: "c-1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ResumeRequest{}), ErrEmptyChatID)

	assert.NoError(t, v.Validate(ctx, LogDate("2025-11-04")))
	assert.ErrorIs(t, v.Validate(ctx, LogDate("2025-13-01")), ErrInvalidDate)
	assert.ErrorIs(t, v.Validate(ctx, LogDate("04.11.2025")), ErrInvalidDate)
}
