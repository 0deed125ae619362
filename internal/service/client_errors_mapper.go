// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
	"github.com/MKhiriev/go-ai-feedback/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptyInput:
			return ErrEmptyInput
		case app.MsgEmptyTranscript:
			return ErrEmptyTranscript
		case app.MsgInvalidDate:
			return validators.ErrInvalidDate
		case app.MsgNoUserIDProvided:
			return validators.ErrEmptyUserID
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgLogNotFound:
			return store.ErrProgressLogNotFound
		case app.MsgNoAudio:
			return ErrNoAudio
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUserNameAlreadyExists:
			return store.ErrUserNameAlreadyExists
		case app.MsgAlreadyProcessing:
			return ErrAlreadyProcessing
		case app.MsgAlreadySaving:
			return ErrAlreadySaving
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgSaveFailed:
			return ErrSaveFailed
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
