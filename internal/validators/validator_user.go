// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ai-feedback/models"
)

const (
	FieldUserName    = "user_name"
	FieldPassword    = "password"
	FieldCharacterID = "character_id"
)

// MinPasswordLength is the shortest accepted sign-up password.
const MinPasswordLength = 4

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CharacterUpdateRequest:
		return validateCharacter(value.CharacterID)
	case *models.CharacterUpdateRequest:
		return validateCharacter(value.CharacterID)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword, FieldCharacterID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if strings.TrimSpace(req.UserName) == "" {
				return ErrEmptyUserName
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldCharacterID:
			if err := validateCharacter(req.CharacterID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// login only checks presence; the policy is enforced at sign-up
func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if strings.TrimSpace(req.UserName) == "" {
				return ErrEmptyUserName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			return ErrPasswordNotDigits
		}
	}
	return nil
}

func validateCharacter(id int) error {
	if _, ok := models.FindCharacter(id); !ok {
		return ErrUnknownCharacter
	}
	return nil
}
